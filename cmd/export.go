package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fairway/pkg/round"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all rounds as a JSON array to stdout or a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rounds, err := store.Load()
		if err != nil {
			return err
		}
		if rounds == nil {
			rounds = []round.Round{}
		}

		payload, err := json.MarshalIndent(rounds, "", "  ")
		if err != nil {
			return err
		}
		payload = append(payload, '\n')

		if outPath == "" {
			_, err = os.Stdout.Write(payload)
			return err
		}
		if err := os.WriteFile(outPath, payload, 0o644); err != nil {
			return err
		}
		fmt.Printf("Exported %d round(s) to %s\n", len(rounds), outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
}
