// Package residents derives rotation metrics and grouped distributions
// from the resident-rotation dataset. Like the schedule statistics, every
// query recomputes from the immutable snapshot.
package residents

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthsByName = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseCompactDate parses the dataset's compact "D-Mon-YY" form, e.g.
// "9-Jun-24" -> 2024-06-09. The two-digit year is always 2000+YY; the
// dataset predates no other century and none is supported.
func ParseCompactDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("compact date %q: want D-Mon-YY", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("compact date %q: bad day: %w", s, err)
	}
	month, ok := monthsByName[parts[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("compact date %q: unknown month %q", s, parts[1])
	}
	yy, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("compact date %q: bad year: %w", s, err)
	}

	return time.Date(2000+yy, month, day, 0, 0, 0, 0, time.UTC), nil
}
