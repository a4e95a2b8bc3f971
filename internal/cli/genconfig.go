package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
)

func newGenConfigCmd() *cobra.Command {
	var (
		format     string
		outputPath string
		full       bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    "Genconfig prints the built-in host config. TOML output has every value commented out\nunless --full is given, so it can be saved and edited selectively.",
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := hostconfig.ParseFormat(format)
			if err != nil {
				return err
			}

			var content []byte
			if f == hostconfig.FormatTOML && !full {
				content = []byte(hostconfig.GenerateCommented())
			} else {
				if content, err = hostconfig.Marshal(hostconfig.Default(), f); err != nil {
					return err
				}
			}

			if outputPath == "" {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}
			if err := os.WriteFile(outputPath, content, 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", outputPath)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml, yaml, json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&full, "full", false, "Emit active values instead of a commented template")
	return cmd
}
