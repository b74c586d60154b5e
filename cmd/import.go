package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fairway/internal/utils"
	"fairway/pkg/round"
	"fairway/pkg/storage"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import rounds from a JSON array file",
	Long: `Reads a JSON array of round records (the format export writes) and
appends every valid record to the store. Records that fail validation,
and records whose id is already stored, are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("import file not found: %s", path)
			}
			return err
		}

		// The file store's tolerant decode doubles as the import parser:
		// structurally broken entries are already filtered here.
		incoming, err := storage.NewFileStore(path, 0).Load()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		existing, err := store.Load()
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(existing))
		for _, r := range existing {
			seen[r.ID] = true
		}

		now := time.Now()
		var accepted []round.Round
		skipped := 0
		for _, r := range incoming {
			if err := r.Validate(now); err != nil {
				utils.Log.Warnf("skipping round %s: %v", r.ID, err)
				skipped++
				continue
			}
			if seen[r.ID] {
				utils.Log.Warnf("skipping round %s: id already stored", r.ID)
				skipped++
				continue
			}
			seen[r.ID] = true
			accepted = append(accepted, r)
		}

		if len(accepted) == 0 {
			fmt.Printf("Nothing to import (%d record(s) skipped).\n", skipped)
			return nil
		}

		if err := store.Save(append(accepted, existing...)); err != nil {
			return err
		}
		fmt.Printf("Imported %d round(s), skipped %d.\n", len(accepted), skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
