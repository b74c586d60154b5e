package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fairway/pkg/round"
	"fairway/pkg/whs"
)

// handicapCmd represents the handicap command
var handicapCmd = &cobra.Command{
	Use:   "handicap",
	Short: "Print the current handicap index",
	Long: `Computes the WHS handicap index over your most recent rounds: the best
differentials of the last twenty rounds, averaged and adjusted per the
sliding scale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rounds, err := store.Load()
		if err != nil {
			return err
		}

		index, ok := whs.HandicapIndex(round.Differentials(rounds))
		if !ok {
			fmt.Println("No handicap index yet: no rounds recorded.")
			return nil
		}
		fmt.Printf("%.1f\n", index)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(handicapCmd)
}
