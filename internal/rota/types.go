package rota

// Category identifies a staffing tier within a schedule day.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryFirstOnCall  Category = "firstOnCall"
	CategorySecondOnCall Category = "secondOnCall"
	CategoryThirdOnCall  Category = "thirdOnCall"
)

// Categories lists the concrete staffing tiers in display order.
var Categories = []Category{CategoryFirstOnCall, CategorySecondOnCall, CategoryThirdOnCall}

// Matches reports whether a shift in tier c should be included under filter f.
func (f Category) Matches(c Category) bool {
	return f == CategoryAll || f == c
}

// Valid reports whether f is a known filter value.
func (f Category) Valid() bool {
	if f == CategoryAll {
		return true
	}
	for _, c := range Categories {
		if f == c {
			return true
		}
	}
	return false
}

// Shift is a single rostered duty within a day. Area is optional and only
// some tiers carry it; Doctors may be empty for unfilled slots.
type Shift struct {
	ShiftType string   `json:"shiftType"`
	Area      string   `json:"area,omitempty"`
	Time      string   `json:"time"`
	Doctors   []string `json:"doctors,omitempty"`
}

// RowKey is the identity of the shift's display row: the shift type,
// suffixed with the area when one is present.
func (s Shift) RowKey() string {
	if s.Area != "" {
		return s.ShiftType + " - " + s.Area
	}
	return s.ShiftType
}

// ScheduleDay holds one calendar day of the rota. Date is an ISO calendar
// date (YYYY-MM-DD); missing tier arrays decode as empty slices.
type ScheduleDay struct {
	Date         string  `json:"date"`
	FirstOnCall  []Shift `json:"firstOnCall,omitempty"`
	SecondOnCall []Shift `json:"secondOnCall,omitempty"`
	ThirdOnCall  []Shift `json:"thirdOnCall,omitempty"`
}

// Tier returns the shift list for a concrete category.
func (d ScheduleDay) Tier(c Category) []Shift {
	switch c {
	case CategoryFirstOnCall:
		return d.FirstOnCall
	case CategorySecondOnCall:
		return d.SecondOnCall
	case CategoryThirdOnCall:
		return d.ThirdOnCall
	}
	return nil
}

// ScheduleDocument is the on-disk shape of the schedule dataset.
type ScheduleDocument struct {
	Schedule []ScheduleDay `json:"schedule"`
}

// RawResident is a resident-rotation record as published, with compact
// D-Mon-YY date strings. From is the source hospital, Notes the rotation
// type label.
type RawResident struct {
	Name      string `json:"name"`
	From      string `json:"from"`
	Notes     string `json:"notes"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ResidentsDocument is the on-disk shape of the residents dataset.
type ResidentsDocument struct {
	Residents []RawResident `json:"residents"`
}

// Snapshot is the immutable in-memory dataset every engine computes
// against. It is loaded once and never mutated; recomputation always
// restarts from here.
type Snapshot struct {
	Schedule  []ScheduleDay
	Residents []RawResident
}

// Day returns the schedule day with the given ISO date, or false.
func (s *Snapshot) Day(date string) (ScheduleDay, bool) {
	for _, d := range s.Schedule {
		if d.Date == date {
			return d, true
		}
	}
	return ScheduleDay{}, false
}

// Dates returns the dataset's calendar dates in publication order.
func (s *Snapshot) Dates() []string {
	dates := make([]string, 0, len(s.Schedule))
	for _, d := range s.Schedule {
		dates = append(dates, d.Date)
	}
	return dates
}
