package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every rating and mistake of the learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !yes {
				answer, err := newPrompter(cmd.InOrStdin(), out).ask(
					fmt.Sprintf("Clear all progress of %q? [y/N] ", e.cfg.Progress.Learner))
				if err != nil || answer != "y" {
					fmt.Fprintln(out, "Nothing cleared.")
					return nil
				}
			}

			tracker, closeProgress, err := e.progress(ctx)
			if err != nil {
				return err
			}
			defer closeProgress()

			if err := tracker.Clear(ctx); err != nil {
				return fmt.Errorf("clear progress: %w", err)
			}
			fmt.Fprintln(out, "Progress cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
