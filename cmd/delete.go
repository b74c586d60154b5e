package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fairway/pkg/storage"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <round-id>",
	Short: "Delete a single round by its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		found, err := storage.Delete(store, args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no round with id %s", args[0])
		}
		fmt.Printf("Deleted round %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
