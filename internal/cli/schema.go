package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/document"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <" + strings.Join(document.SchemaKinds(), "|") + ">",
		Short:     "Print the JSON schema of a persisted progress document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: document.SchemaKinds(),
		// Runs without config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := document.Schema(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}
