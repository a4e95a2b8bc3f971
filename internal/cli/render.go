package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/render"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/output"
	"github.com/arthur-debert/cardrender/pkg/ui/output/styles"
)

type renderOptions struct {
	format     string
	stylesPath string
	overflow   bool
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render <card>...",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			defer logging.LogOperationStart(logger, "render")()

			format, err := ui.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			if opts.stylesPath != "" {
				if err := styles.LoadStyles(opts.stylesPath); err != nil {
					return fmt.Errorf(MsgErrLoadStyles, err)
				}
			}

			hc, err := global.loadHostConfig()
			if err != nil {
				return err
			}
			var extra []render.Option
			if cmd.Flags().Changed("overflow") {
				extra = append(extra, render.WithOverflowMaxActions(opts.overflow))
			}
			pipeline, err := global.newPipeline(hc, extra...)
			if err != nil {
				return err
			}

			out, err := output.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			results := renderAll(contextOf(cmd), pipeline, args, cmd.InOrStdin())
			return writeResults(out, results)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "auto", "Output format ("+strings.Join(ui.Formats(), ", ")+")")
	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "YAML file replacing the terminal styles")
	cmd.Flags().BoolVar(&opts.overflow, "overflow", false, "Move actions beyond maxActions into an overflow menu")

	return cmd
}

// writeResults writes every card in order. Failed cards are reported in
// place and counted in the returned error.
func writeResults(out ui.Renderer, results []cardResult) error {
	failed := 0
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				if err := out.RenderMessage(""); err != nil {
					return err
				}
			}
			if err := out.RenderMessage(fmt.Sprintf(MsgRenderedHeader, res.Name)); err != nil {
				return err
			}
		}
		if res.Card != nil && res.Card.Root != nil {
			if err := out.RenderCard(res.Card.Root, res.Card.Warnings); err != nil {
				return err
			}
		}
		if res.Err != nil {
			failed++
			if err := out.RenderError(res.Err); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return errors.Newf(errors.ErrRender, MsgErrRenderFailed, failed)
	}
	return nil
}
