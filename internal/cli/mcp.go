package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cardrender/internal/version"
	"github.com/arthur-debert/cardrender/pkg/mcpserver"
)

func newMCPCmd(global *globalOptions) *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: MsgMCPShort,
		Long:  "Mcp serves the render_card and validate_card tools over stdio. Calls without a\nhostConfig argument use the host config loaded from --config, --set and the environment.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hc, err := global.loadHostConfig()
			if err != nil {
				return err
			}
			srv, err := mcpserver.New(mcpserver.Options{
				Version:    version.Version,
				HostConfig: hc,
				CacheSize:  cacheSize,
			})
			if err != nil {
				return err
			}
			return srv.ServeStdio()
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Parsed host configs to keep (0 uses the default)")
	return cmd
}
