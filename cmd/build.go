package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/brochure/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the brochure page from the data file and slideshow folder",
	Long: `The build command reads the data file (default './events_data.json'),
collects images from the slideshow folder (default './slideshow_folder/',
created if missing) and markdown announcements, and writes the page to the
configured output file (default './index.html'), replacing any previous one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context())
	},
}

func runBuild(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := site.New(appConfig, logger).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("✓ Page generated successfully", zap.String("path", path))
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
