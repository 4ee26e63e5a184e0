package residents

import (
	"fmt"
	"math"
	"time"

	"rotaboard/internal/rota"
)

// Resident is a rotation record with parsed dates and derived durations.
// DurationMonths uses a flat 30-day month on purpose: the published
// statistics were produced with that approximation and switching to
// calendar-month arithmetic would change them near month boundaries.
type Resident struct {
	Name           string    `json:"name"`
	Hospital       string    `json:"hospital"`
	RotationType   string    `json:"rotationType"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DurationDays   int       `json:"durationDays"`
	DurationMonths int       `json:"durationMonths"`
}

// StartYear returns the calendar year the rotation began.
func (r Resident) StartYear() int {
	return r.StartDate.Year()
}

// Derive parses and enriches the raw records. A date that fails to parse
// fails the whole derivation: the dataset is published as one unit and a
// partial view would skew every distribution below.
func Derive(raw []rota.RawResident) ([]Resident, error) {
	residents := make([]Resident, 0, len(raw))
	for _, rec := range raw {
		start, err := ParseCompactDate(rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("resident %q: %w", rec.Name, err)
		}
		end, err := ParseCompactDate(rec.EndDate)
		if err != nil {
			return nil, fmt.Errorf("resident %q: %w", rec.Name, err)
		}

		days := int(math.Ceil(end.Sub(start).Hours() / 24))
		residents = append(residents, Resident{
			Name:           rec.Name,
			Hospital:       rec.From,
			RotationType:   rec.Notes,
			StartDate:      start,
			EndDate:        end,
			DurationDays:   days,
			DurationMonths: int(math.Round(float64(days) / 30)),
		})
	}
	return residents, nil
}

// DurationBucketLabels are the fixed histogram buckets for rotation
// length, keyed by DurationMonths.
var DurationBucketLabels = []string{
	"1 Month", "2 Months", "3 Months", "4-6 Months", "7-12 Months", "Over 12 Months",
}

// DurationBuckets distributes residents over the fixed rotation-length
// buckets: <=1, exactly 2, exactly 3, 4-6, 7-12, over 12 months.
func DurationBuckets(rs []Resident) []int {
	buckets := make([]int, len(DurationBucketLabels))
	for _, r := range rs {
		switch m := r.DurationMonths; {
		case m <= 1:
			buckets[0]++
		case m == 2:
			buckets[1]++
		case m == 3:
			buckets[2]++
		case m >= 4 && m <= 6:
			buckets[3]++
		case m >= 7 && m <= 12:
			buckets[4]++
		default:
			buckets[5]++
		}
	}
	return buckets
}

// CountByType groups the residents by rotation type, in first-seen order.
func CountByType(rs []Resident) []GroupCount {
	return groupBy(rs, func(r Resident) string { return r.RotationType })
}

// CountByHospital groups the residents by source hospital, in first-seen
// order.
func CountByHospital(rs []Resident) []GroupCount {
	return groupBy(rs, func(r Resident) string { return r.Hospital })
}

// MonthlyStarts counts rotation starts per calendar month, January first.
func MonthlyStarts(rs []Resident) [12]int {
	var months [12]int
	for _, r := range rs {
		months[int(r.StartDate.Month())-1]++
	}
	return months
}

// GroupCount is one labelled group of a distribution.
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func groupBy(rs []Resident, key func(Resident) string) []GroupCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range rs {
		k := key(r)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	groups := make([]GroupCount, len(order))
	for i, k := range order {
		groups[i] = GroupCount{Label: k, Count: counts[k]}
	}
	return groups
}

// Summary holds the headline numbers for a filtered resident set.
type Summary struct {
	Total                   int    `json:"total"`
	AverageDurationDays     int    `json:"averageDurationDays"`
	MostCommonHospital      string `json:"mostCommonHospital"`
	MostCommonHospitalCount int    `json:"mostCommonHospitalCount"`
	MostCommonType          string `json:"mostCommonType"`
	MostCommonTypeCount     int    `json:"mostCommonTypeCount"`
	BusiestMonth            string `json:"busiestMonth"`
	BusiestMonthStarts      int    `json:"busiestMonthStarts"`
}

// Summarize computes the summary card for a filtered set. Most-common
// ties keep the first candidate encountered in a single forward scan;
// the busiest month is the first index holding the maximum.
func Summarize(rs []Resident) Summary {
	summary := Summary{
		Total:              len(rs),
		MostCommonHospital: "None",
		MostCommonType:     "None",
	}

	if len(rs) > 0 {
		totalDays := 0
		for _, r := range rs {
			totalDays += r.DurationDays
		}
		summary.AverageDurationDays = int(math.Round(float64(totalDays) / float64(len(rs))))
	}

	for _, g := range CountByHospital(rs) {
		if g.Count > summary.MostCommonHospitalCount {
			summary.MostCommonHospital = g.Label
			summary.MostCommonHospitalCount = g.Count
		}
	}
	for _, g := range CountByType(rs) {
		if g.Count > summary.MostCommonTypeCount {
			summary.MostCommonType = g.Label
			summary.MostCommonTypeCount = g.Count
		}
	}

	months := MonthlyStarts(rs)
	busiest := 0
	for i, count := range months {
		if count > months[busiest] {
			busiest = i
		}
	}
	summary.BusiestMonth = time.Month(busiest + 1).String()
	summary.BusiestMonthStarts = months[busiest]

	return summary
}
