package stats

import "rotaboard/internal/rota"

// DaySummary is the dashboard header line for one schedule day.
type DaySummary struct {
	Date         string `json:"date"`
	TotalShifts  int    `json:"totalShifts"`
	TotalDoctors int    `json:"totalDoctors"`
}

// SummarizeDay counts the day's shifts across all categories and its
// distinct assigned doctors.
func SummarizeDay(day rota.ScheduleDay) DaySummary {
	summary := DaySummary{Date: day.Date}
	seen := make(map[string]bool)

	for _, c := range rota.Categories {
		shifts := day.Tier(c)
		summary.TotalShifts += len(shifts)
		for _, shift := range shifts {
			for _, doctor := range shift.Doctors {
				if !seen[doctor] {
					seen[doctor] = true
					summary.TotalDoctors++
				}
			}
		}
	}

	return summary
}
