package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/translit"
)

func newConvertCmd(e *env) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Transliterate Burmese text to Devanagari",
		Long: `Transliterate the arguments, or every line of stdin when no arguments
are given. --explain prints each match the engine made.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := e.catalog(cmd.Context())
			if err != nil {
				return err
			}
			engine := cat.Engine()
			out := cmd.OutOrStdout()

			convert := func(text string) {
				if explain {
					printTrace(out, engine.Explain(text))
					return
				}
				fmt.Fprintln(out, engine.Transliterate(text))
			}

			if len(args) > 0 {
				convert(strings.Join(args, " "))
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				convert(sc.Text())
			}
			return sc.Err()
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "print the conversion steps")
	return cmd
}

func printTrace(w io.Writer, tr translit.Trace) {
	fmt.Fprintf(w, "input:  %s\n", tr.Input)
	if tr.SpecialCase {
		fmt.Fprintln(w, "special case")
	}
	for i, st := range tr.Steps {
		kind := st.Tier.String()
		switch {
		case st.SpecialCase:
			kind = "special"
		case st.Unmatched:
			kind = "unmatched"
		}
		fmt.Fprintf(w, "%3d  %-10s %q -> %q  rest %q\n", i+1, kind, st.Matched, st.Output, st.Remaining)
	}
	fmt.Fprintf(w, "result: %s\n", tr.Result)
}
