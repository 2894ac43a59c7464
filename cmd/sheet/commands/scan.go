package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sheet/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [files...]",
		Short: "Show which classes would receive their sibling stylesheet",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			configPath, _ := cmd.Flags().GetString("config")
			logFormat, _ := cmd.Flags().GetString("log-format")

			return c.app.Scan(cmd.Context(), cmd.OutOrStdout(), args, app.ScanOptions{
				ConfigPath: configPath,
				LogFormat:  logFormat,
			})
		},
	}
}
