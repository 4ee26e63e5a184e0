package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rotaboard/internal/residents"
	"rotaboard/internal/rota"
	"rotaboard/internal/stats"
	"rotaboard/internal/timeline"
	"rotaboard/internal/visuals"
)

var (
	reportDate   string
	reportFilter string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write Mermaid charts for the loaded dataset",
	Long: `Report renders the dashboard's charts as Mermaid markdown files in the
output directory: the duty, weekend and streak statistics, the resident
rotation distributions, and optionally the shift Gantt for one day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := rota.Category(reportFilter)
		if !filter.Valid() {
			return fmt.Errorf("unknown category filter %q", reportFilter)
		}
		if err := os.MkdirAll(reportOut, 0o755); err != nil {
			return err
		}

		charts := map[string]string{
			"duties.md":  visuals.GenerateDutyChart(stats.CountDuties(snapshot.Schedule, filter)),
			"weekend.md": visuals.GenerateWeekendChart(stats.WeekendDuties(snapshot.Schedule)),
			"streaks.md": visuals.GenerateStreakChart(stats.ConsecutiveStreaks(snapshot.Schedule)),
		}

		rs, err := residents.Derive(snapshot.Residents)
		if err != nil {
			return err
		}
		charts["monthly_starts.md"] = visuals.GenerateMonthlyStartsChart(residents.MonthlyStarts(rs))
		charts["durations.md"] = visuals.GenerateDurationChart(residents.DurationBuckets(rs))

		if reportDate != "" {
			day, ok := snapshot.Day(reportDate)
			if !ok {
				return fmt.Errorf("no schedule for date %s", reportDate)
			}
			rows := timeline.BuildLayout(day, filter, timeline.LayoutOptions{})
			name := "gantt_" + strings.ReplaceAll(reportDate, "-", "") + ".md"
			charts[name] = visuals.GenerateDayGantt(reportDate, rows)
		}

		for name, chart := range charts {
			if chart == "" {
				continue
			}
			path := filepath.Join(reportOut, name)
			if err := os.WriteFile(path, []byte(chart+"\n"), 0o644); err != nil {
				return err
			}
			log.Info().Str("file", path).Msg("Chart written")
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "render the shift Gantt for this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportFilter, "filter", string(rota.CategoryAll), "category filter: all, firstOnCall, secondOnCall, thirdOnCall")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "reports", "output directory")
	rootCmd.AddCommand(reportCmd)
}
