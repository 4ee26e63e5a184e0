package timeline

import (
	"testing"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		ok        bool
		start     int
		end       int
		overnight bool
	}{
		{"Daytime", "9am to 5pm", true, 9, 17, false},
		{"Morning", "8am to 4pm", true, 8, 16, false},
		{"Overnight", "10pm to 6am", true, 22, 6, true},
		{"ElevenToSix", "11pm to 6am", true, 23, 6, true},
		{"MidnightStart", "12am to 1am", true, 0, 1, false},
		{"NoonStart", "12pm to 8pm", true, 12, 20, false},
		{"NoonEnd", "8am to 12pm", true, 8, 12, false},
		{"UppercaseMeridiem", "9AM to 5PM", true, 9, 17, false},
		{"EmbeddedText", "on call 9am to 5pm (bleep 123)", true, 9, 17, false},
		{"Garbage", "whenever", false, 0, 0, false},
		{"MissingMeridiem", "9 to 5", false, 0, 0, false},
		{"Empty", "", false, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := ParseTimeRange(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseTimeRange(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if tr.Start.Hour != tt.start || tr.End.Hour != tt.end {
				t.Errorf("ParseTimeRange(%q) = %d to %d, want %d to %d",
					tt.input, tr.Start.Hour, tr.End.Hour, tt.start, tt.end)
			}
			if tr.Overnight != tt.overnight {
				t.Errorf("ParseTimeRange(%q) overnight = %v, want %v", tt.input, tr.Overnight, tt.overnight)
			}
			if tr.Start.Minute != 0 || tr.End.Minute != 0 {
				t.Errorf("ParseTimeRange(%q) carries nonzero minutes", tt.input)
			}
		})
	}
}

func TestParseTimeRangeAllDay(t *testing.T) {
	tr, ok := ParseTimeRange("All Day")
	if !ok {
		t.Fatal("Expected All Day to parse")
	}
	if tr.Start.Hour != 0 || tr.End.Hour != 24 || tr.Overnight {
		t.Errorf("All Day = %+v, want 0 to 24, not overnight", tr)
	}

	// The sentinel is exact; a lowercase variant lacks the meridiem
	// pattern and fails like any other unknown string.
	if _, ok := ParseTimeRange("all day"); ok {
		t.Error("Expected lowercase variant to fail")
	}
}

func TestClockTimeConversions(t *testing.T) {
	c := ClockTime{Hour: 6, Minute: 30}
	if got := c.Minutes(); got != 390 {
		t.Errorf("Minutes() = %d, want 390", got)
	}
	if got := c.DayFraction(); got != 6.5/24 {
		t.Errorf("DayFraction() = %v, want %v", got, 6.5/24)
	}
}
