package stats

import (
	"fmt"
	"sort"
	"strings"

	"rotaboard/internal/rota"
)

// DoctorDuty is a doctor's duty count under one category filter, with a
// per-shift-type histogram and a short display breakdown of the two most
// common shift types.
type DoctorDuty struct {
	Name       string     `json:"name"`
	Total      int        `json:"total"`
	ShiftTypes []KeyCount `json:"shiftTypes"`
	TopShifts  string     `json:"topShifts"`
}

// CountDuties scans every day of the schedule and accumulates per-doctor
// duty totals for the filtered categories. The result is ranked by
// descending total; doctors with equal totals keep the order in which they
// first appear in the dataset.
func CountDuties(schedule []rota.ScheduleDay, filter rota.Category) []DoctorDuty {
	totals := newTally()
	shiftTypes := make(map[string]*tally)

	for _, day := range schedule {
		for _, c := range rota.Categories {
			if !filter.Matches(c) {
				continue
			}
			for _, shift := range day.Tier(c) {
				for _, doctor := range shift.Doctors {
					totals.Add(doctor)
					if shiftTypes[doctor] == nil {
						shiftTypes[doctor] = newTally()
					}
					shiftTypes[doctor].Add(shift.ShiftType)
				}
			}
		}
	}

	duties := make([]DoctorDuty, 0, len(totals.order))
	for _, name := range totals.order {
		ranked := shiftTypes[name].Ranked()
		duties = append(duties, DoctorDuty{
			Name:       name,
			Total:      totals.Count(name),
			ShiftTypes: ranked,
			TopShifts:  formatTopShifts(ranked, 2),
		})
	}
	sort.SliceStable(duties, func(i, j int) bool {
		return duties[i].Total > duties[j].Total
	})
	return duties
}

// formatTopShifts renders the top n histogram entries as
// "Type (count), Type (count)".
func formatTopShifts(ranked []KeyCount, n int) string {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	parts := make([]string, len(ranked))
	for i, kc := range ranked {
		parts[i] = fmt.Sprintf("%s (%d)", kc.Key, kc.Count)
	}
	return strings.Join(parts, ", ")
}
