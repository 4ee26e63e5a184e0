package residents

import "strconv"

// FilterAll is the sentinel that disables one filter dimension. An empty
// string behaves the same, so zero-valued filters pass everything.
const FilterAll = "all"

// Filter selects residents by exact match on start year, rotation type and
// source hospital. The dimensions are conjunctive and independent, so the
// order they are applied in cannot change the result.
type Filter struct {
	Year         string `json:"year" form:"year"`
	RotationType string `json:"type" form:"type"`
	Hospital     string `json:"hospital" form:"hospital"`
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// Matches reports whether one resident passes the filter.
func (f Filter) Matches(r Resident) bool {
	if active(f.Year) && strconv.Itoa(r.StartYear()) != f.Year {
		return false
	}
	if active(f.RotationType) && r.RotationType != f.RotationType {
		return false
	}
	if active(f.Hospital) && r.Hospital != f.Hospital {
		return false
	}
	return true
}

// Apply returns the residents passing the filter, preserving dataset
// order. The input is never modified.
func Apply(rs []Resident, f Filter) []Resident {
	var out []Resident
	for _, r := range rs {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct start years present, in first-seen order, for
// populating filter controls.
func Years(rs []Resident) []string {
	seen := make(map[string]bool)
	var years []string
	for _, r := range rs {
		y := strconv.Itoa(r.StartYear())
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	return years
}
