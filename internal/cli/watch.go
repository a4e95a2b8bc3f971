package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/output"
	"github.com/arthur-debert/cardrender/pkg/watch"
)

func newWatchCmd(global *globalOptions) *cobra.Command {
	var (
		format   string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <card>...",
		Short: MsgWatchShort,
		Long:  "Watch renders the cards, then renders them again whenever a card or the host config file changes.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			out, err := output.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			// Host config is reloaded on every pass so edits to it apply
			renderPass := func(ctx context.Context, _ []string) error {
				hc, err := global.loadHostConfig()
				if err != nil {
					return out.RenderError(err)
				}
				pipeline, err := global.newPipeline(hc)
				if err != nil {
					return out.RenderError(err)
				}
				return writeResults(out, renderAll(ctx, pipeline, args, cmd.InOrStdin()))
			}

			files := append([]string(nil), args...)
			if path := global.hostConfigPath(); path != "" {
				files = append(files, path)
			}
			w, err := watch.New(files, renderPass, watch.WithDebounce(debounce))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
			defer stop()

			initialRender(ctx, renderPass)
			if err := out.RenderMessage(fmt.Sprintf(MsgWatching, len(files))); err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Output format ("+strings.Join(ui.Formats(), ", ")+")")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-rendering")
	return cmd
}

// initialRender runs the first pass before watching starts. Failures are
// logged like those of later passes and do not stop the watch.
func initialRender(ctx context.Context, pass watch.Handler) {
	if err := pass(ctx, nil); err != nil {
		logger := logging.GetLogger("cli.watch")
		logger.Warn().Err(err).Msg("Initial render failed")
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
