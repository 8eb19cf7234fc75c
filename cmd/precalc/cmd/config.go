package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/precalc/pkg/core/config"
)

func newConfigCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults, the config file and
PRECALC_* environment variables have been applied.

Examples:
  precalc config
  precalc config --format yaml > precalc.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal(format)
			if err != nil {
				return err
			}
			if a.cfg.Source != "" {
				a.logger.Debug("configuration source", "path", a.cfg.Source)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, "output format (toml, yaml)")
	return cmd
}
