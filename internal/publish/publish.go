// Package publish renders the dashboard into a self-contained static
// site suitable for plain file hosting. The UI assets are minified with
// esbuild and every API response the pages rely on is precomputed and
// written as a JSON file under api/, so the published copy needs no
// server process at all.
package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog/log"

	"rotaboard/internal/config"
	"rotaboard/internal/residents"
	"rotaboard/internal/rota"
	"rotaboard/internal/stats"
	"rotaboard/internal/timeline"
)

// Publish writes the static site for snap into cfg.DocsDir. The
// destination directory is created if needed; existing files are
// overwritten in place.
func Publish(cfg *config.AppConfig, snap *rota.Snapshot) error {
	rs, err := residents.Derive(snap.Residents)
	if err != nil {
		return fmt.Errorf("deriving resident metrics: %w", err)
	}

	for _, dir := range []string{"", "css", "js", "api", filepath.Join("api", "stats"), filepath.Join("api", "residents"), filepath.Join("api", "timeline")} {
		if err := os.MkdirAll(filepath.Join(cfg.DocsDir, dir), 0o755); err != nil {
			return fmt.Errorf("creating docs directory: %w", err)
		}
	}

	if err := writeAssets(cfg); err != nil {
		return err
	}
	if err := writeAPISnapshots(cfg.DocsDir, snap, rs); err != nil {
		return err
	}

	log.Info().Str("docs", cfg.DocsDir).Msg("static site published")
	return nil
}

// writeAssets copies the HTML pages verbatim and minifies every script
// and stylesheet. Scripts get their API base rewritten from the live
// server path to the relative api/ directory of the static site.
func writeAssets(cfg *config.AppConfig) error {
	pages, err := filepath.Glob(filepath.Join(cfg.UIDir, "*.html"))
	if err != nil {
		return err
	}
	for _, page := range pages {
		if err := copyFile(page, filepath.Join(cfg.DocsDir, filepath.Base(page))); err != nil {
			return err
		}
	}

	scripts, err := filepath.Glob(filepath.Join(cfg.UIDir, "js", "*.js"))
	if err != nil {
		return err
	}
	for _, script := range scripts {
		src, err := os.ReadFile(script)
		if err != nil {
			return err
		}
		code := strings.ReplaceAll(string(src), `"/api"`, `"./api"`)
		out, err := minify(code, api.LoaderJS, script)
		if err != nil {
			return err
		}
		dst := filepath.Join(cfg.DocsDir, "js", filepath.Base(script))
		if err := os.WriteFile(dst, out, 0o644); err != nil {
			return err
		}
	}

	sheets, err := filepath.Glob(filepath.Join(cfg.UIDir, "css", "*.css"))
	if err != nil {
		return err
	}
	for _, sheet := range sheets {
		src, err := os.ReadFile(sheet)
		if err != nil {
			return err
		}
		out, err := minify(string(src), api.LoaderCSS, sheet)
		if err != nil {
			return err
		}
		dst := filepath.Join(cfg.DocsDir, "css", filepath.Base(sheet))
		if err := os.WriteFile(dst, out, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func minify(code string, loader api.Loader, name string) ([]byte, error) {
	result := api.Transform(code, api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: false,
	})
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("minifying %s: %s", name, result.Errors[0].Text)
	}
	return result.Code, nil
}

// writeAPISnapshots precomputes the JSON the pages fetch at runtime.
// The file layout mirrors the live API routes, extensionless, so the
// same fetch paths work against either a running server or the docs
// tree.
func writeAPISnapshots(docsDir string, snap *rota.Snapshot, rs []residents.Resident) error {
	monthly := residents.MonthlyStarts(rs)

	files := map[string]any{
		filepath.Join("api", "schedule"): rota.ScheduleDocument{Schedule: snap.Schedule},
		filepath.Join("api", "dates"):    map[string]any{"dates": snap.Dates()},
		filepath.Join("api", "stats", "duties"): map[string]any{
			"filter": rota.CategoryAll,
			"duties": stats.CountDuties(snap.Schedule, rota.CategoryAll),
		},
		filepath.Join("api", "stats", "weekend"): map[string]any{
			"duties": stats.WeekendDuties(snap.Schedule),
		},
		filepath.Join("api", "stats", "streaks"): map[string]any{
			"streaks": stats.ConsecutiveStreaks(snap.Schedule),
		},
		filepath.Join("api", "residents", "all"):     map[string]any{"residents": rs},
		filepath.Join("api", "residents", "summary"): residents.Summarize(rs),
		filepath.Join("api", "residents", "filters"): map[string]any{
			"years":     residents.Years(rs),
			"types":     residents.CountByType(rs),
			"hospitals": residents.CountByHospital(rs),
		},
		filepath.Join("api", "residents", "distributions"): map[string]any{
			"byType":        residents.CountByType(rs),
			"byHospital":    residents.CountByHospital(rs),
			"monthlyStarts": monthly[:],
			"durationBuckets": map[string]any{
				"labels": residents.DurationBucketLabels,
				"counts": residents.DurationBuckets(rs),
			},
		},
	}

	for _, day := range snap.Schedule {
		rows := timeline.BuildLayout(day, rota.CategoryAll, timeline.LayoutOptions{})
		files[filepath.Join("api", "timeline", day.Date)] = map[string]any{
			"date":    day.Date,
			"summary": stats.SummarizeDay(day),
			"rows":    rows,
		}
	}

	for rel, payload := range files {
		if err := writeJSON(filepath.Join(docsDir, rel), payload); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
