package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/precalc/pkg/core/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.Details())
			return err
		},
	}
}
