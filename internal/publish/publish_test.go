package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rotaboard/internal/config"
	"rotaboard/internal/rota"
)

func testSnapshot() *rota.Snapshot {
	return &rota.Snapshot{
		Schedule: []rota.ScheduleDay{
			{
				Date: "2026-06-01",
				FirstOnCall: []rota.Shift{
					{ShiftType: "Day Cover", Time: "9am to 5pm", Doctors: []string{"Dr. A"}},
				},
			},
		},
		Residents: []rota.RawResident{
			{Name: "Dr. X", From: "Central", Notes: "Medicine", StartDate: "1-Jan-24", EndDate: "30-Jun-24"},
		},
	}
}

func writeUI(t *testing.T) string {
	t.Helper()
	ui := t.TempDir()
	for _, dir := range []string{"js", "css"} {
		if err := os.MkdirAll(filepath.Join(ui, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	files := map[string]string{
		"index.html":     "<html><body>rota</body></html>",
		"js/app.js":      "const API_BASE = \"/api\";\n\n// fetch helper\nasync function load() { return fetch(API_BASE + \"/dates\"); }\n",
		"css/styles.css": "body {\n  margin: 0;\n}\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(ui, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return ui
}

func TestPublish(t *testing.T) {
	cfg := &config.AppConfig{
		UIDir:   writeUI(t),
		DocsDir: filepath.Join(t.TempDir(), "docs"),
	}

	if err := Publish(cfg, testSnapshot()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// HTML is copied verbatim.
	html, err := os.ReadFile(filepath.Join(cfg.DocsDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "rota") {
		t.Errorf("index.html = %q", html)
	}

	// Scripts are minified and retargeted at the static api directory.
	js, err := os.ReadFile(filepath.Join(cfg.DocsDir, "js", "app.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), `"./api"`) {
		t.Errorf("app.js not retargeted: %q", js)
	}
	if strings.Contains(string(js), "fetch helper") {
		t.Errorf("app.js not minified: %q", js)
	}

	css, err := os.ReadFile(filepath.Join(cfg.DocsDir, "css", "styles.css"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(css), "\n  margin") {
		t.Errorf("styles.css not minified: %q", css)
	}
}

func TestPublishAPISnapshots(t *testing.T) {
	cfg := &config.AppConfig{
		UIDir:   writeUI(t),
		DocsDir: filepath.Join(t.TempDir(), "docs"),
	}
	if err := Publish(cfg, testSnapshot()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	var dates struct {
		Dates []string `json:"dates"`
	}
	raw, err := os.ReadFile(filepath.Join(cfg.DocsDir, "api", "dates"))
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &dates); err != nil {
		t.Fatal(err)
	}
	if len(dates.Dates) != 1 || dates.Dates[0] != "2026-06-01" {
		t.Errorf("Dates snapshot = %v", dates.Dates)
	}

	// A per-day timeline file exists and carries the layout rows.
	var tl struct {
		Rows []struct {
			Key string `json:"key"`
		} `json:"rows"`
	}
	raw, err = os.ReadFile(filepath.Join(cfg.DocsDir, "api", "timeline", "2026-06-01"))
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &tl); err != nil {
		t.Fatal(err)
	}
	if len(tl.Rows) != 1 || tl.Rows[0].Key != "Day Cover" {
		t.Errorf("Timeline snapshot rows = %+v", tl.Rows)
	}

	for _, rel := range []string{
		"api/schedule",
		"api/stats/duties",
		"api/stats/weekend",
		"api/stats/streaks",
		"api/residents/all",
		"api/residents/summary",
		"api/residents/filters",
		"api/residents/distributions",
	} {
		if _, err := os.Stat(filepath.Join(cfg.DocsDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("Missing snapshot %s: %v", rel, err)
		}
	}
}

func TestPublishFailsOnBadResidents(t *testing.T) {
	cfg := &config.AppConfig{
		UIDir:   writeUI(t),
		DocsDir: filepath.Join(t.TempDir(), "docs"),
	}
	snap := testSnapshot()
	snap.Residents[0].StartDate = "soon"
	if err := Publish(cfg, snap); err == nil {
		t.Fatal("Expected Publish to fail on unparseable resident dates")
	}
}
