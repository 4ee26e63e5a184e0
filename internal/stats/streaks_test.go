package stats

import (
	"testing"

	"rotaboard/internal/rota"
)

func dayFor(date string, doctors ...string) rota.ScheduleDay {
	return rota.ScheduleDay{
		Date: date,
		FirstOnCall: []rota.Shift{
			{ShiftType: "Day Cover", Time: "9am to 5pm", Doctors: doctors},
		},
	}
}

func TestConsecutiveStreaks(t *testing.T) {
	// Dr. A works days 1,2,3 then 5,6: longest streak 3, two streaks,
	// five days total.
	schedule := []rota.ScheduleDay{
		dayFor("2026-06-01", "Dr. A"),
		dayFor("2026-06-02", "Dr. A"),
		dayFor("2026-06-03", "Dr. A"),
		dayFor("2026-06-05", "Dr. A"),
		dayFor("2026-06-06", "Dr. A"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 1 {
		t.Fatalf("Expected 1 doctor, got %d", len(streaks))
	}

	s := streaks[0]
	if s.MaxConsecutiveDays != 3 {
		t.Errorf("MaxConsecutiveDays = %d, want 3", s.MaxConsecutiveDays)
	}
	if s.StreakCount != 2 {
		t.Errorf("StreakCount = %d, want 2 (trailing streak must be counted)", s.StreakCount)
	}
	if s.TotalDaysWorked != 5 {
		t.Errorf("TotalDaysWorked = %d, want 5", s.TotalDaysWorked)
	}
}

func TestConsecutiveStreaksEndOnLastDay(t *testing.T) {
	// A streak running to the end of the dataset still counts.
	schedule := []rota.ScheduleDay{
		dayFor("2026-06-29", "Dr. A"),
		dayFor("2026-06-30", "Dr. A"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 1 || streaks[0].MaxConsecutiveDays != 2 || streaks[0].StreakCount != 1 {
		t.Errorf("Got %+v, want one streak of 2", streaks)
	}
}

func TestConsecutiveStreaksExcludesIsolatedDays(t *testing.T) {
	schedule := []rota.ScheduleDay{
		dayFor("2026-06-01", "Dr. A", "Dr. B"),
		dayFor("2026-06-02", "Dr. B"),
		dayFor("2026-06-04", "Dr. A"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 1 || streaks[0].Name != "Dr. B" {
		t.Fatalf("Expected only Dr. B, got %+v", streaks)
	}
}

func TestConsecutiveStreaksMonthBoundary(t *testing.T) {
	schedule := []rota.ScheduleDay{
		dayFor("2026-06-30", "Dr. A"),
		dayFor("2026-07-01", "Dr. A"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 1 || streaks[0].MaxConsecutiveDays != 2 {
		t.Errorf("Month boundary must extend the streak, got %+v", streaks)
	}
}

func TestConsecutiveStreaksDistinctDates(t *testing.T) {
	// Two shifts on the same day count as one worked day.
	schedule := []rota.ScheduleDay{
		{
			Date: "2026-06-01",
			FirstOnCall: []rota.Shift{
				{ShiftType: "Day Cover", Time: "9am to 5pm", Doctors: []string{"Dr. A"}},
				{ShiftType: "Night Cover", Time: "10pm to 6am", Doctors: []string{"Dr. A"}},
			},
		},
		dayFor("2026-06-02", "Dr. A"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 1 || streaks[0].TotalDaysWorked != 2 {
		t.Errorf("Got %+v, want 2 distinct worked days", streaks)
	}
}

func TestConsecutiveStreaksRanking(t *testing.T) {
	schedule := []rota.ScheduleDay{
		dayFor("2026-06-01", "Dr. Short", "Dr. Long"),
		dayFor("2026-06-02", "Dr. Short", "Dr. Long"),
		dayFor("2026-06-03", "Dr. Long"),
	}

	streaks := ConsecutiveStreaks(schedule)
	if len(streaks) != 2 {
		t.Fatalf("Expected 2 doctors, got %d", len(streaks))
	}
	if streaks[0].Name != "Dr. Long" || streaks[0].MaxConsecutiveDays != 3 {
		t.Errorf("Top streak = %+v, want Dr. Long with 3", streaks[0])
	}
}
