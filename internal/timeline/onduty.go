package timeline

import "rotaboard/internal/rota"

// ActiveDoctors returns the doctors on duty at the given instant, in
// first-seen order and deduplicated across shifts. Regular shifts cover
// the half-open interval [start, end); overnight shifts cover the union
// of [start, midnight) and [midnight, end). Shifts with no doctors or an
// unparseable time contribute nothing.
func ActiveDoctors(day rota.ScheduleDay, at ClockTime, filter rota.Category) []string {
	now := at.Minutes()

	var active []string
	seen := make(map[string]bool)

	for _, c := range rota.Categories {
		if !filter.Matches(c) {
			continue
		}
		for _, shift := range day.Tier(c) {
			tr, ok := ParseTimeRange(shift.Time)
			if !ok || len(shift.Doctors) == 0 {
				continue
			}
			if !tr.Covers(now) {
				continue
			}
			for _, doctor := range shift.Doctors {
				if !seen[doctor] {
					seen[doctor] = true
					active = append(active, doctor)
				}
			}
		}
	}

	return active
}

// Covers reports whether the range contains the instant given as minutes
// since midnight. The end boundary is exclusive in both shapes.
func (tr TimeRange) Covers(nowMinutes int) bool {
	start := tr.Start.Minutes()
	end := tr.End.Minutes()
	if tr.Overnight {
		return nowMinutes >= start || nowMinutes < end
	}
	return nowMinutes >= start && nowMinutes < end
}
