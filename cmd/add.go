package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fairway/pkg/round"
	"fairway/pkg/storage"
	"fairway/pkg/whs"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a round and update your handicap index",
	Long: `Records a round from its gross score and the course's published
rating and slope, computes the WHS score differential and prints the
updated handicap index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawDate, _ := cmd.Flags().GetString("date")
		rawScore, _ := cmd.Flags().GetString("score")
		rawRating, _ := cmd.Flags().GetString("rating")
		rawSlope, _ := cmd.Flags().GetString("slope")
		course, _ := cmd.Flags().GetString("course")

		now := time.Now()
		if rawDate == "" {
			rawDate = now.Format(round.DateLayout)
		}

		date, err := round.ValidateDate(rawDate, now)
		if err != nil {
			return err
		}
		score, err := round.ValidateScore(rawScore)
		if err != nil {
			return err
		}
		rating, err := round.ValidateCourseRating(rawRating)
		if err != nil {
			return err
		}
		slope, err := round.ValidateSlope(rawSlope)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		r := round.New(date, score, rating, slope, course)
		if err := storage.Append(store, r); err != nil {
			return err
		}

		fmt.Printf("Recorded round %s: %s, score %d, differential %.1f\n", r.ID, r.Date, r.Score, r.Differential)

		rounds, err := store.Load()
		if err != nil {
			return err
		}
		if index, ok := whs.HandicapIndex(round.Differentials(rounds)); ok {
			fmt.Printf("Handicap index over %d round(s): %.1f\n", len(rounds), index)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("date", "d", "", "Round date, YYYY-MM-DD (default: today)")
	addCmd.Flags().String("score", "", "Gross score (required)")
	addCmd.Flags().String("rating", "", "Course rating, e.g. 72.3 (required)")
	addCmd.Flags().String("slope", "", "Slope rating, e.g. 113 (required)")
	addCmd.Flags().StringP("course", "c", "", "Course name (optional)")
	addCmd.MarkFlagRequired("score")
	addCmd.MarkFlagRequired("rating")
	addCmd.MarkFlagRequired("slope")
}
