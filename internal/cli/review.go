package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/service/review"
)

func newReviewCmd(e *env) *cobra.Command {
	var (
		unrated bool
		rating  int
		due     bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show ratings, mistakes and what is due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, err := e.catalog(ctx)
			if err != nil {
				return err
			}
			tracker, closeProgress, err := e.progress(ctx)
			if err != nil {
				return err
			}
			defer closeProgress()

			svc := review.NewService(e.log, cat, tracker)
			out := cmd.OutOrStdout()

			sum := svc.Summary(ctx)
			fmt.Fprintf(out, "%d messages, %d rated, %d unrated, %d mistakes\n",
				sum.Total, sum.Rated, sum.Unrated, sum.Mistakes)
			for _, level := range domain.RatingLevels() {
				fmt.Fprintf(out, "  %d %s %-28s %d\n", int(level), level.Emoji(), level.Label(), sum.ByRating[level])
			}

			var items []review.Item
			if due {
				items = svc.Due(ctx)
			} else {
				items, err = svc.List(ctx, review.ListInput{Unrated: unrated, Rating: domain.RatingLevel(rating)})
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTOPIC\tBURMESE\tENGLISH\tRATING\tDUE\tMISTAKES")
			for _, it := range items {
				label, dueAt := "-", "-"
				if it.Rating != nil {
					label = it.Rating.Label
					dueAt = it.Rating.DueAt().Format(time.DateOnly)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
					it.Message.ID, it.Message.TopicTitle, it.Message.BurmeseText, it.Message.EnglishText,
					label, dueAt, it.Mistakes)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&unrated, "unrated", false, "only messages without a rating")
	cmd.Flags().IntVar(&rating, "rating", 0, "only messages with this rating (1-5)")
	cmd.Flags().BoolVar(&due, "due", false, "only rated messages due for review, oldest first")
	return cmd
}
