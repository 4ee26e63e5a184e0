package stats

import (
	"sort"
	"time"

	"rotaboard/internal/rota"
)

// WeekendDuty is a doctor's Friday/Saturday duty record across the whole
// schedule.
type WeekendDuty struct {
	Name            string     `json:"name"`
	Total           int        `json:"total"`
	Fridays         int        `json:"fridays"`
	Saturdays       int        `json:"saturdays"`
	ShiftTypes      []KeyCount `json:"shiftTypes"`
	MostCommonShift string     `json:"mostCommonShift"`
}

// WeekendDuties scans only the days falling on a Friday or Saturday and
// accumulates per-doctor weekend duty counts across all categories.
// Ranking is by descending total, ties stable by first appearance; the
// most-common shift tie-break is the first-seen shift type.
func WeekendDuties(schedule []rota.ScheduleDay) []WeekendDuty {
	type record struct {
		total, fridays, saturdays int
		shiftTypes                *tally
	}

	var order []string
	records := make(map[string]*record)

	for _, day := range schedule {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		weekday := date.Weekday()
		if weekday != time.Friday && weekday != time.Saturday {
			continue
		}

		for _, c := range rota.Categories {
			for _, shift := range day.Tier(c) {
				for _, doctor := range shift.Doctors {
					rec := records[doctor]
					if rec == nil {
						rec = &record{shiftTypes: newTally()}
						records[doctor] = rec
						order = append(order, doctor)
					}
					rec.total++
					if weekday == time.Friday {
						rec.fridays++
					} else {
						rec.saturdays++
					}
					rec.shiftTypes.Add(shift.ShiftType)
				}
			}
		}
	}

	duties := make([]WeekendDuty, 0, len(order))
	for _, name := range order {
		rec := records[name]
		ranked := rec.shiftTypes.Ranked()
		duties = append(duties, WeekendDuty{
			Name:            name,
			Total:           rec.total,
			Fridays:         rec.fridays,
			Saturdays:       rec.saturdays,
			ShiftTypes:      ranked,
			MostCommonShift: formatTopShifts(ranked, 1),
		})
	}
	sort.SliceStable(duties, func(i, j int) bool {
		return duties[i].Total > duties[j].Total
	})
	return duties
}
