// Package timeline turns a day's shift records into chart geometry and
// point-in-time coverage queries. All functions are pure: they take the
// loaded snapshot data and return derived values, holding no state.
package timeline

import (
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock instant within one day. Hour 24 is only used
// for the exclusive end of an all-day range.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Minutes returns the instant as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// DayFraction maps the instant onto [0,1] across a 24-hour day.
func (c ClockTime) DayFraction() float64 {
	return (float64(c.Hour) + float64(c.Minute)/60) / 24
}

// TimeRange is a normalized shift time span. When Overnight is set the
// range wraps past midnight and End is clock-earlier than Start.
type TimeRange struct {
	Start     ClockTime `json:"start"`
	End       ClockTime `json:"end"`
	Overnight bool      `json:"overnight"`
}

var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2})(am|pm)\s+to\s+(\d{1,2})(am|pm)`)

// ParseTimeRange parses a human shift time string such as "9am to 5pm" or
// "All Day". The source format carries no minute granularity, so minutes
// are always zero. Unrecognized strings return ok=false; callers skip
// those shifts rather than failing.
func ParseTimeRange(s string) (TimeRange, bool) {
	if s == "All Day" {
		return TimeRange{
			Start: ClockTime{Hour: 0, Minute: 0},
			End:   ClockTime{Hour: 24, Minute: 0},
		}, true
	}

	parts := timeRangePattern.FindStringSubmatch(s)
	if parts == nil {
		return TimeRange{}, false
	}

	startHour, _ := strconv.Atoi(parts[1])
	endHour, _ := strconv.Atoi(parts[3])

	start := ClockTime{Hour: to24Hour(startHour, parts[2])}
	end := ClockTime{Hour: to24Hour(endHour, parts[4])}

	return TimeRange{
		Start:     start,
		End:       end,
		Overnight: end.Hour < start.Hour,
	}, true
}

// to24Hour converts a 12-hour clock value: 12am is midnight, 12pm is noon,
// any other pm hour gains 12.
func to24Hour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
		return 12
	default: // am
		if hour == 12 {
			return 0
		}
		return hour
	}
}
