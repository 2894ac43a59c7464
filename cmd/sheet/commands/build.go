package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sheet/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Bundle the configured entry points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), buildOptions(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "Build mode: production or development (overrides the config)")
	cmd.Flags().Bool("no-minify", false, "Do not minify stylesheets")
	cmd.Flags().StringP("outdir", "o", "", "Output directory (overrides the config)")
}

func buildOptions(cmd *cobra.Command) app.BuildOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logFormat, _ := cmd.Flags().GetString("log-format")
	mode, _ := cmd.Flags().GetString("mode")
	noMinify, _ := cmd.Flags().GetBool("no-minify")
	outdir, _ := cmd.Flags().GetString("outdir")

	return app.BuildOptions{
		ConfigPath: configPath,
		Mode:       mode,
		NoMinify:   noMinify,
		Outdir:     outdir,
		LogFormat:  logFormat,
	}
}
