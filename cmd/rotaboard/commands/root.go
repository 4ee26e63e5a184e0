package commands

import (
	"rotaboard/internal/config"
	"rotaboard/internal/logging"
	"rotaboard/internal/rota"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	snapshot *rota.Snapshot
)

var rootCmd = &cobra.Command{
	Use:   "rotaboard",
	Short: "Rotaboard serves hospital on-call rota and resident rotation dashboards",
	Long: `Rotaboard loads a static on-call schedule and resident rotation dataset,
derives timelines, duty statistics and rotation metrics from it, and serves
the result as a small web dashboard.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		snapshot, err = rota.Load(cfg.DataPath, cfg.ScheduleFile, cfg.ResidentsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load dataset")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Rotaboard starting")
	},
	// Running the bare binary serves the dashboard.
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
