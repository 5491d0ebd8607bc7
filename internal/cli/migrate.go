package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the progress schema to the configured PostgreSQL database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.Database.DSN == "" {
				return fmt.Errorf("database.dsn is not set (DATABASE_DSN)")
			}

			results, err := postgres.Migrate(cmd.Context(), e.cfg.Database.DSN)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			}
			return nil
		},
	}
}
