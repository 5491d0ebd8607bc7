package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

func newTopicsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [id]",
		Short: "List topics, or show the messages of one topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := e.catalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tMESSAGES\tDESCRIPTION")
				for _, t := range cat.Topics() {
					fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", t.ID, t.Title, len(t.Messages), t.Description)
				}
				return tw.Flush()
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewValidationError("id", "must be a number")
			}
			topic, ok := cat.Topic(id)
			if !ok {
				return fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
			}

			fmt.Fprintf(out, "%d. %s\n", topic.ID, topic.Title)
			if topic.Description != "" {
				fmt.Fprintln(out, topic.Description)
			}
			for _, m := range topic.Messages {
				printMessage(out, m)
			}
			return nil
		},
	}
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show what the loaded sheets contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := e.catalog(cmd.Context())
			if err != nil {
				return err
			}
			st := cat.Stats()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "consonants\t%d\n", st.Consonants)
			fmt.Fprintf(tw, "vowels\t%d\n", st.Vowels)
			fmt.Fprintf(tw, "medials\t%d\n", st.Medials)
			fmt.Fprintf(tw, "special cases\t%d\n", st.SpecialCases)
			fmt.Fprintf(tw, "patterns\t%d\n", st.Patterns)
			fmt.Fprintf(tw, "topics\t%d\n", st.Topics)
			fmt.Fprintf(tw, "messages\t%d\n", st.Messages)
			return tw.Flush()
		},
	}
}
