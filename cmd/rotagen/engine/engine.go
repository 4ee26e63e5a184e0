// Package engine generates synthetic rota datasets for local
// development and demos. The output matches the published data shapes,
// including overnight shift times and compact resident dates.
package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"rotaboard/internal/rota"
)

type GeneratorConfig struct {
	Days      int
	Residents int
	Start     time.Time
	Seed      int64
}

var firstNames = []string{
	"Amira", "Bashar", "Dana", "Fadi", "Hala", "Karim", "Lina", "Maya",
	"Nour", "Omar", "Rami", "Rania", "Sami", "Tala", "Yara", "Ziad",
}

var lastNames = []string{
	"Haddad", "Khalil", "Mansour", "Nasser", "Qasem", "Saleh",
	"Shami", "Tahan", "Youssef", "Zeidan",
}

var hospitals = []string{
	"Central Hospital", "St. George", "University Medical Center", "Northside Clinic",
}

var rotationTypes = []string{
	"Internal Medicine", "Surgery", "Pediatrics", "Emergency", "Cardiology",
}

// dayTimes are the regular daytime slots; nightTimes wrap past midnight.
var dayTimes = []string{"8am to 4pm", "9am to 5pm", "All Day"}
var nightTimes = []string{"10pm to 6am", "11pm to 7am", "8pm to 8am"}

var wardAreas = []string{"ER", "ICU", "Ward A", "Ward B"}

// Generate builds a schedule and a resident roster from cfg. The same
// seed always produces the same dataset.
func Generate(cfg GeneratorConfig) ([]rota.ScheduleDay, []rota.RawResident) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Start.IsZero() {
		now := time.Now()
		cfg.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	pool := make([]string, 0, len(firstNames)*len(lastNames))
	for _, f := range firstNames {
		for _, l := range lastNames {
			pool = append(pool, "Dr. "+f+" "+l)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	staff := pool[:24]

	pick := func(n int) []string {
		picked := make([]string, 0, n)
		seen := make(map[int]bool)
		for len(picked) < n {
			i := rng.Intn(len(staff))
			if seen[i] {
				continue
			}
			seen[i] = true
			picked = append(picked, staff[i])
		}
		return picked
	}

	schedule := make([]rota.ScheduleDay, 0, cfg.Days)
	for d := 0; d < cfg.Days; d++ {
		date := cfg.Start.AddDate(0, 0, d).Format("2006-01-02")
		day := rota.ScheduleDay{Date: date}

		for _, area := range wardAreas[:2] {
			day.FirstOnCall = append(day.FirstOnCall, rota.Shift{
				ShiftType: "Day Cover",
				Area:      area,
				Time:      dayTimes[rng.Intn(len(dayTimes))],
				Doctors:   pick(1 + rng.Intn(2)),
			})
		}
		day.FirstOnCall = append(day.FirstOnCall, rota.Shift{
			ShiftType: "Night Cover",
			Time:      nightTimes[rng.Intn(len(nightTimes))],
			Doctors:   pick(1),
		})

		day.SecondOnCall = append(day.SecondOnCall, rota.Shift{
			ShiftType: "Registrar",
			Time:      "All Day",
			Doctors:   pick(1),
		})

		// Third on call thins out on some days and occasionally has an
		// unfilled slot.
		if rng.Float64() < 0.8 {
			shift := rota.Shift{
				ShiftType: "Consultant",
				Time:      "9am to 9pm",
			}
			if rng.Float64() < 0.9 {
				shift.Doctors = pick(1)
			}
			day.ThirdOnCall = append(day.ThirdOnCall, shift)
		}

		schedule = append(schedule, day)
	}

	roster := make([]rota.RawResident, 0, cfg.Residents)
	for i := 0; i < cfg.Residents; i++ {
		name := pool[(24+i)%len(pool)]
		begin := cfg.Start.AddDate(0, -rng.Intn(18), 0)
		begin = time.Date(begin.Year(), begin.Month(), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		months := 1 + rng.Intn(12)
		end := begin.AddDate(0, months, -1)

		roster = append(roster, rota.RawResident{
			Name:      name,
			From:      hospitals[rng.Intn(len(hospitals))],
			Notes:     rotationTypes[rng.Intn(len(rotationTypes))],
			StartDate: compactDate(begin),
			EndDate:   compactDate(end),
		})
	}

	return schedule, roster
}

// compactDate renders t in the roster's D-Mon-YY form, without a
// leading zero on the day.
func compactDate(t time.Time) string {
	return fmt.Sprintf("%d-%s-%02d", t.Day(), t.Format("Jan"), t.Year()%100)
}

// Save writes the two dataset files into outDir.
func Save(outDir string, schedule []rota.ScheduleDay, roster []rota.RawResident) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "schedule.json"), rota.ScheduleDocument{Schedule: schedule}); err != nil {
		return err
	}
	return writeJSON(filepath.Join(outDir, "residents.json"), rota.ResidentsDocument{Residents: roster})
}

func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
