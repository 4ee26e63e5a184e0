package stats

import (
	"sort"
	"time"

	"rotaboard/internal/rota"
)

// StreakStat summarizes a doctor's consecutive-working-day behaviour.
// StreakCount counts maximal runs longer than one day.
type StreakStat struct {
	Name               string `json:"name"`
	MaxConsecutiveDays int    `json:"maxConsecutiveDays"`
	StreakCount        int    `json:"streakCount"`
	TotalDaysWorked    int    `json:"totalDaysWorked"`
}

// ConsecutiveStreaks builds, per doctor, the sorted set of distinct
// calendar dates on which they appear in any shift of any category, then
// walks it counting runs of adjacent days. Doctors who never work two
// adjacent days are excluded. The result is ranked by descending longest
// streak, ties stable by first appearance in the dataset.
func ConsecutiveStreaks(schedule []rota.ScheduleDay) []StreakStat {
	var order []string
	workDates := make(map[string]map[string]bool)

	for _, day := range schedule {
		for _, c := range rota.Categories {
			for _, shift := range day.Tier(c) {
				for _, doctor := range shift.Doctors {
					if workDates[doctor] == nil {
						workDates[doctor] = make(map[string]bool)
						order = append(order, doctor)
					}
					workDates[doctor][day.Date] = true
				}
			}
		}
	}

	var results []StreakStat
	for _, name := range order {
		dates := make([]string, 0, len(workDates[name]))
		for d := range workDates[name] {
			dates = append(dates, d)
		}
		// ISO dates sort chronologically as strings.
		sort.Strings(dates)

		stat := walkStreaks(name, dates)
		if stat.MaxConsecutiveDays > 1 {
			results = append(results, stat)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MaxConsecutiveDays > results[j].MaxConsecutiveDays
	})
	return results
}

// walkStreaks scans a doctor's sorted distinct work dates. A gap of
// exactly one calendar day extends the current streak; any other gap
// closes it. The trailing streak is flushed exactly once after the loop.
func walkStreaks(name string, dates []string) StreakStat {
	maxConsecutive := 0
	streakCount := 0
	currentStreak := 1

	for i := 1; i < len(dates); i++ {
		if dayGap(dates[i-1], dates[i]) == 1 {
			currentStreak++
			continue
		}
		if currentStreak > 1 {
			streakCount++
		}
		if currentStreak > maxConsecutive {
			maxConsecutive = currentStreak
		}
		currentStreak = 1
	}

	if currentStreak > 1 {
		streakCount++
	}
	if currentStreak > maxConsecutive {
		maxConsecutive = currentStreak
	}

	return StreakStat{
		Name:               name,
		MaxConsecutiveDays: maxConsecutive,
		StreakCount:        streakCount,
		TotalDaysWorked:    len(dates),
	}
}

// dayGap returns the whole calendar days between two ISO dates, or -1 when
// either fails to parse (treated as a streak break by the caller).
func dayGap(prev, curr string) int {
	p, err := time.Parse("2006-01-02", prev)
	if err != nil {
		return -1
	}
	c, err := time.Parse("2006-01-02", curr)
	if err != nil {
		return -1
	}
	return int(c.Sub(p).Hours() / 24)
}
