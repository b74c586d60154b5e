package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fairway/pkg/round"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded rounds, newest first",
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
		if len(rounds) == 0 {
			fmt.Println("No rounds recorded yet. Add one with `fairway add`.")
			return nil
		}

		printRounds(rounds)
		return nil
	},
}

func printRounds(rounds []round.Round) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tSCORE\tRATING\tSLOPE\tDIFF\tCOURSE\tID")
	for _, r := range rounds {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%.1f\t%s\t%s\n", r.Date, r.Score, r.CourseRating, r.Slope, r.Differential, r.Course, r.ID)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
