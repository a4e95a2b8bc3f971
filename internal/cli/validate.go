package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/types"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <card>...",
		Short: MsgValidateShort,
		Long:  "Validate parses and renders each card without writing it, listing every warning.\nWith --strict, warnings fail validation too.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hc, err := global.loadHostConfig()
			if err != nil {
				return err
			}
			pipeline, err := global.newPipeline(hc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success := pterm.Success.WithWriter(out)
			warning := pterm.Warning.WithWriter(out)
			failure := pterm.Error.WithWriter(out)

			failed := 0
			for _, res := range renderAll(contextOf(cmd), pipeline, args, cmd.InOrStdin()) {
				var warnings types.Warnings
				if res.Card != nil {
					warnings = res.Card.Warnings
				}
				switch {
				case res.Err != nil:
					failed++
					failure.Println(fmt.Sprintf("%s: %v", res.Name, res.Err))
				case len(warnings) == 0:
					success.Println(fmt.Sprintf(MsgCardOK, res.Name))
					continue
				default:
					if strict {
						failed++
					}
					warning.Println(fmt.Sprintf(MsgCardWarnings, res.Name, len(warnings)))
				}
				// Warnings raised before a fatal error are still reported
				for _, w := range warnings {
					_, _ = fmt.Fprintf(out, "  %s: %s\n", w.StatusCode, w.Message)
				}
			}

			if failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrValidation, failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	return cmd
}
