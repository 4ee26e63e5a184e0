package residents

import (
	"reflect"
	"testing"

	"rotaboard/internal/rota"
)

func testRaw() []rota.RawResident {
	return []rota.RawResident{
		{Name: "Dr. A", From: "Central", Notes: "Medicine", StartDate: "1-Jan-24", EndDate: "31-Jan-24"},
		{Name: "Dr. B", From: "St. George", Notes: "Surgery", StartDate: "15-Feb-24", EndDate: "14-Aug-24"},
		{Name: "Dr. C", From: "Central", Notes: "Medicine", StartDate: "1-Mar-24", EndDate: "31-Mar-25"},
		{Name: "Dr. D", From: "Northside", Notes: "Pediatrics", StartDate: "1-Jan-25", EndDate: "28-Feb-25"},
	}
}

func TestDeriveDurations(t *testing.T) {
	rs, err := Derive(testRaw())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	tests := []struct {
		name   string
		days   int
		months int
	}{
		{"Dr. A", 30, 1},
		{"Dr. B", 181, 6},
		{"Dr. C", 395, 13},
		{"Dr. D", 58, 2},
	}
	for i, tt := range tests {
		if rs[i].Name != tt.name {
			t.Fatalf("Resident %d = %s, want %s", i, rs[i].Name, tt.name)
		}
		if rs[i].DurationDays != tt.days {
			t.Errorf("%s DurationDays = %d, want %d", tt.name, rs[i].DurationDays, tt.days)
		}
		if rs[i].DurationMonths != tt.months {
			t.Errorf("%s DurationMonths = %d, want %d", tt.name, rs[i].DurationMonths, tt.months)
		}
	}

	if got := rs[0].StartYear(); got != 2024 {
		t.Errorf("StartYear = %d, want 2024", got)
	}
}

func TestDeriveFailsOnBadDate(t *testing.T) {
	raw := []rota.RawResident{
		{Name: "Dr. A", StartDate: "1-Jan-24", EndDate: "31-Jan-24"},
		{Name: "Dr. Bad", StartDate: "soon", EndDate: "31-Jan-24"},
	}
	if _, err := Derive(raw); err == nil {
		t.Fatal("Expected Derive to fail on an unparseable date")
	}
}

func TestDurationBuckets(t *testing.T) {
	rs := []Resident{
		{DurationMonths: 0},
		{DurationMonths: 1},
		{DurationMonths: 2},
		{DurationMonths: 3},
		{DurationMonths: 4},
		{DurationMonths: 6},
		{DurationMonths: 7},
		{DurationMonths: 12},
		{DurationMonths: 13},
	}

	got := DurationBuckets(rs)
	want := []int{2, 1, 1, 2, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DurationBuckets = %v, want %v", got, want)
	}
	if len(got) != len(DurationBucketLabels) {
		t.Errorf("Bucket count %d does not match label count %d", len(got), len(DurationBucketLabels))
	}
}

func TestGroupingAndMonthlyStarts(t *testing.T) {
	rs, err := Derive(testRaw())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	byType := CountByType(rs)
	wantTypes := []GroupCount{{"Medicine", 2}, {"Surgery", 1}, {"Pediatrics", 1}}
	if !reflect.DeepEqual(byType, wantTypes) {
		t.Errorf("CountByType = %v, want %v", byType, wantTypes)
	}

	byHospital := CountByHospital(rs)
	if byHospital[0].Label != "Central" || byHospital[0].Count != 2 {
		t.Errorf("CountByHospital[0] = %+v, want Central (2)", byHospital[0])
	}

	months := MonthlyStarts(rs)
	if months[0] != 2 || months[1] != 1 || months[2] != 1 {
		t.Errorf("MonthlyStarts = %v, want 2 Jan, 1 Feb, 1 Mar", months)
	}
}

func TestSummarize(t *testing.T) {
	rs, err := Derive(testRaw())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	summary := Summarize(rs)
	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	// (30+181+395+58)/4 = 166.
	if summary.AverageDurationDays != 166 {
		t.Errorf("AverageDurationDays = %d, want 166", summary.AverageDurationDays)
	}
	if summary.MostCommonHospital != "Central" || summary.MostCommonHospitalCount != 2 {
		t.Errorf("MostCommonHospital = %s (%d), want Central (2)",
			summary.MostCommonHospital, summary.MostCommonHospitalCount)
	}
	if summary.MostCommonType != "Medicine" || summary.MostCommonTypeCount != 2 {
		t.Errorf("MostCommonType = %s (%d), want Medicine (2)",
			summary.MostCommonType, summary.MostCommonTypeCount)
	}
	if summary.BusiestMonth != "January" || summary.BusiestMonthStarts != 2 {
		t.Errorf("BusiestMonth = %s (%d), want January (2)",
			summary.BusiestMonth, summary.BusiestMonthStarts)
	}
}

func TestSummarizeTiesKeepFirstSeen(t *testing.T) {
	rs := []Resident{
		{Hospital: "B Hospital", RotationType: "Surgery"},
		{Hospital: "A Hospital", RotationType: "Medicine"},
	}

	summary := Summarize(rs)
	if summary.MostCommonHospital != "B Hospital" {
		t.Errorf("MostCommonHospital = %s, want first-seen B Hospital", summary.MostCommonHospital)
	}
	if summary.MostCommonType != "Surgery" {
		t.Errorf("MostCommonType = %s, want first-seen Surgery", summary.MostCommonType)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Total != 0 || summary.AverageDurationDays != 0 {
		t.Errorf("Empty summary = %+v, want zero totals", summary)
	}
	if summary.MostCommonHospital != "None" || summary.MostCommonType != "None" {
		t.Errorf("Empty summary labels = %s/%s, want None/None",
			summary.MostCommonHospital, summary.MostCommonType)
	}
	if summary.BusiestMonth != "January" || summary.BusiestMonthStarts != 0 {
		t.Errorf("Empty busiest month = %s (%d), want January (0)",
			summary.BusiestMonth, summary.BusiestMonthStarts)
	}
}
