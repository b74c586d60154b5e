package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fairway/pkg/round"
	"fairway/pkg/whs"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the recorded rounds.",
	Long:  "Prints statistics about the recorded rounds.",
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
			fmt.Println("No data in the store to generate stats.")
			return nil
		}

		best, worst, avg := summarizeDifferentials(rounds)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "ROUNDS\tBEST DIFF\tWORST DIFF\tAVG DIFF\tINDEX\t")
		indexCol := "-"
		if index, ok := whs.HandicapIndex(round.Differentials(rounds)); ok {
			indexCol = fmt.Sprintf("%.1f", index)
		}
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%s\t\n", len(rounds), best, worst, avg, indexCol)
		w.Flush()

		return nil
	},
}

func summarizeDifferentials(rounds []round.Round) (best, worst, avg float64) {
	best = rounds[0].Differential
	worst = rounds[0].Differential
	var sum float64
	for _, r := range rounds {
		if r.Differential < best {
			best = r.Differential
		}
		if r.Differential > worst {
			worst = r.Differential
		}
		sum += r.Differential
	}
	return best, worst, sum / float64(len(rounds))
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
