package commands

import (
	"github.com/spf13/cobra"

	"rotaboard/internal/publish"
)

var publishDocs string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the dashboard as a static site",
	Long: `Publish minifies the UI assets and precomputes every API response into
plain JSON files, producing a docs directory that can be hosted on any
static file server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("docs") {
			cfg.DocsDir = publishDocs
		}
		return publish.Publish(cfg, snapshot)
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishDocs, "docs", "docs", "output directory for the static site")
	rootCmd.AddCommand(publishCmd)
}
