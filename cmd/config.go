package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig(root, cmd.ErrOrStderr())
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
}
