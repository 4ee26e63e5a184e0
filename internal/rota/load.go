package rota

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// Load reads and validates both datasets and returns the immutable
// snapshot. Any read, decode, or validation failure is fatal for the load
// attempt: the caller gets (nil, error) and never a partial snapshot.
func Load(dataPath, scheduleFile, residentsFile string) (*Snapshot, error) {
	var scheduleDoc ScheduleDocument
	if err := loadDocument(filepath.Join(dataPath, scheduleFile), scheduleSchema, &scheduleDoc); err != nil {
		return nil, fmt.Errorf("schedule dataset: %w", err)
	}

	var residentsDoc ResidentsDocument
	if err := loadDocument(filepath.Join(dataPath, residentsFile), residentsSchema, &residentsDoc); err != nil {
		return nil, fmt.Errorf("residents dataset: %w", err)
	}

	snap := &Snapshot{
		Schedule:  scheduleDoc.Schedule,
		Residents: residentsDoc.Residents,
	}

	log.Info().
		Int("days", len(snap.Schedule)).
		Int("residents", len(snap.Residents)).
		Int("unparseableTimes", countUnparseableTimes(snap.Schedule)).
		Msg("Snapshot loaded")

	return snap, nil
}

// loadDocument reads a JSON file, checks it against the dataset schema,
// and decodes it into out.
func loadDocument(path string, resolved *jsonschema.Resolved, out any) (err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("validate %s: %w", filepath.Base(path), err)
	}

	return json.Unmarshal(raw, out)
}

// countUnparseableTimes tallies shifts whose time string the timeline
// parser will reject. They are skipped downstream, not load failures, but
// a spike here usually means the upstream rota export changed format.
func countUnparseableTimes(schedule []ScheduleDay) int {
	bad := 0
	for _, day := range schedule {
		for _, c := range Categories {
			for _, shift := range day.Tier(c) {
				if !timeStringParses(shift.Time) {
					bad++
				}
			}
		}
	}
	return bad
}
