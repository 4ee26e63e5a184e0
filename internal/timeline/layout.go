package timeline

import (
	"strings"

	"rotaboard/internal/rota"
)

// DefaultMinLabelWidth is the narrowest day fraction that still fits a
// joined doctor-name label; anything narrower shows an ellipsis.
const DefaultMinLabelWidth = 0.1

// Ellipsis is the placeholder label for segments too narrow for names.
const Ellipsis = "..."

// Segment is one rendered slice of a shift within a 24-hour row. Left and
// Width are fractions of the day. Shift carries the underlying record for
// tooltip/detail lookup; an overnight shift contributes two segments that
// share it.
type Segment struct {
	Left     float64       `json:"left"`
	Width    float64       `json:"width"`
	Label    string        `json:"label,omitempty"`
	Category rota.Category `json:"category"`
	Shift    rota.Shift    `json:"shift"`
}

// Row is one horizontal lane of the chart, identified by the shift's
// row key (shiftType, or "shiftType - area").
type Row struct {
	Key      string    `json:"key"`
	Segments []Segment `json:"segments"`
}

// LayoutOptions tunes segment labelling.
type LayoutOptions struct {
	MinLabelWidth float64
}

// BuildLayout produces the Gantt-style row layout for one day under the
// given category filter. Rows appear in first-seen order across the tiers;
// shifts whose time string fails to parse are omitted without error.
func BuildLayout(day rota.ScheduleDay, filter rota.Category, opts LayoutOptions) []Row {
	minWidth := opts.MinLabelWidth
	if minWidth <= 0 {
		minWidth = DefaultMinLabelWidth
	}

	var keys []string
	byKey := make(map[string]int)

	// First pass: collect row identities in display order.
	for _, c := range rota.Categories {
		if !filter.Matches(c) {
			continue
		}
		for _, shift := range day.Tier(c) {
			if _, ok := ParseTimeRange(shift.Time); !ok {
				continue
			}
			key := shift.RowKey()
			if _, seen := byKey[key]; !seen {
				byKey[key] = len(keys)
				keys = append(keys, key)
			}
		}
	}

	rows := make([]Row, len(keys))
	for i, key := range keys {
		rows[i].Key = key
	}

	// Second pass: place segments.
	for _, c := range rota.Categories {
		if !filter.Matches(c) {
			continue
		}
		for _, shift := range day.Tier(c) {
			tr, ok := ParseTimeRange(shift.Time)
			if !ok {
				continue
			}
			idx := byKey[shift.RowKey()]
			rows[idx].Segments = append(rows[idx].Segments, shiftSegments(shift, c, tr, minWidth)...)
		}
	}

	return rows
}

// shiftSegments converts one parsed shift into its display segments: a
// single block for a regular shift, or a midnight-split pair for an
// overnight one.
func shiftSegments(shift rota.Shift, c rota.Category, tr TimeRange, minWidth float64) []Segment {
	if !tr.Overnight {
		seg := Segment{
			Left:     tr.Start.DayFraction(),
			Width:    tr.End.DayFraction() - tr.Start.DayFraction(),
			Category: c,
			Shift:    shift,
		}
		if len(shift.Doctors) > 0 {
			if seg.Width > minWidth {
				seg.Label = strings.Join(shift.Doctors, ", ")
			} else {
				seg.Label = Ellipsis
			}
		}
		return []Segment{seg}
	}

	first := Segment{
		Left:     tr.Start.DayFraction(),
		Width:    (24 - float64(tr.Start.Hour) - float64(tr.Start.Minute)/60) / 24,
		Category: c,
		Shift:    shift,
	}
	second := Segment{
		Left:     0,
		Width:    (float64(tr.End.Hour) + float64(tr.End.Minute)/60) / 24,
		Category: c,
		Shift:    shift,
	}

	// Only the wider part gets the joined names, and only when it clears
	// the minimum width; the narrow part (or both, when neither fits)
	// shows the ellipsis.
	if len(shift.Doctors) > 0 {
		names := strings.Join(shift.Doctors, ", ")
		switch {
		case first.Width > second.Width && first.Width > minWidth:
			first.Label = names
			second.Label = Ellipsis
		case second.Width > minWidth:
			second.Label = names
			first.Label = Ellipsis
		default:
			first.Label = Ellipsis
			second.Label = Ellipsis
		}
	}

	return []Segment{first, second}
}
