package visuals

import (
	"fmt"
	"math"
	"strings"

	"rotaboard/internal/residents"
	"rotaboard/internal/stats"
	"rotaboard/internal/timeline"
)

// GenerateDayGantt creates a Mermaid gantt diagram for one day's shift
// layout. Overnight shifts appear as their two split segments, exactly as
// the dashboard draws them.
func GenerateDayGantt(date string, rows []timeline.Row) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("gantt\n")
	sb.WriteString(fmt.Sprintf("    title \"On-Call Rota %s\"\n", date))
	sb.WriteString("    dateFormat HH:mm\n")
	sb.WriteString("    axisFormat %H:%M\n")

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    section %s\n", sanitizeLabel(row.Key)))
		for _, seg := range row.Segments {
			startMin := int(math.Round(seg.Left * 24 * 60))
			durMin := int(math.Round(seg.Width * 24 * 60))
			label := seg.Label
			if label == "" {
				label = seg.Shift.ShiftType
			}
			sb.WriteString(fmt.Sprintf("    %s :%02d:%02d, %dm\n",
				sanitizeLabel(label), startMin/60, startMin%60, durMin))
		}
	}

	sb.WriteString("```")
	return sb.String()
}

// GenerateDutyChart creates a Mermaid bar chart of the top duty counts.
func GenerateDutyChart(duties []stats.DoctorDuty) string {
	if len(duties) == 0 {
		return ""
	}

	limit := len(duties)
	if limit > 10 {
		limit = 10
	}

	var labels []string
	var values []string
	maxVal := 0

	for _, d := range duties[:limit] {
		labels = append(labels, fmt.Sprintf("\"%s\"", sanitizeLabel(d.Name)))
		values = append(values, fmt.Sprintf("%d", d.Total))
		if d.Total > maxVal {
			maxVal = d.Total
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Top Doctors by Duties\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Duties\" 0 --> %d\n", maxVal+headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateWeekendChart creates a Mermaid bar chart of Friday/Saturday duty
// counts.
func GenerateWeekendChart(duties []stats.WeekendDuty) string {
	if len(duties) == 0 {
		return ""
	}

	limit := len(duties)
	if limit > 10 {
		limit = 10
	}

	var labels []string
	var values []string
	maxVal := 0

	for _, d := range duties[:limit] {
		labels = append(labels, fmt.Sprintf("\"%s\"", sanitizeLabel(d.Name)))
		values = append(values, fmt.Sprintf("%d", d.Total))
		if d.Total > maxVal {
			maxVal = d.Total
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Top Doctors by Weekend Duties (Friday & Saturday)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Weekend Duties\" 0 --> %d\n", maxVal+headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateStreakChart creates a Mermaid bar chart of the longest
// consecutive-working-day streaks.
func GenerateStreakChart(streaks []stats.StreakStat) string {
	if len(streaks) == 0 {
		return ""
	}

	limit := len(streaks)
	if limit > 10 {
		limit = 10
	}

	var labels []string
	var values []string
	maxVal := 0

	for _, s := range streaks[:limit] {
		labels = append(labels, fmt.Sprintf("\"%s\"", sanitizeLabel(s.Name)))
		values = append(values, fmt.Sprintf("%d", s.MaxConsecutiveDays))
		if s.MaxConsecutiveDays > maxVal {
			maxVal = s.MaxConsecutiveDays
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Longest Consecutive Working Days\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Days\" 0 --> %d\n", maxVal+headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateMonthlyStartsChart creates a Mermaid line chart of rotation
// starts per calendar month.
func GenerateMonthlyStartsChart(months [12]int) string {
	labels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	var quoted []string
	var values []string
	maxVal := 0
	total := 0

	for i, count := range months {
		quoted = append(quoted, fmt.Sprintf("\"%s\"", labels[i]))
		values = append(values, fmt.Sprintf("%d", count))
		total += count
		if count > maxVal {
			maxVal = count
		}
	}
	if total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Monthly Distribution of Start Dates\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(quoted, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"New Starts\" 0 --> %d\n", maxVal+headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateDurationChart creates a Mermaid bar chart of the fixed
// rotation-length buckets.
func GenerateDurationChart(buckets []int) string {
	if len(buckets) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0
	total := 0

	for i, count := range buckets {
		labels = append(labels, fmt.Sprintf("\"%s\"", sanitizeLabel(residents.DurationBucketLabels[i])))
		values = append(values, fmt.Sprintf("%d", count))
		total += count
		if count > maxVal {
			maxVal = count
		}
	}
	if total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Distribution by Rotation Length\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Residents\" 0 --> %d\n", maxVal+headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// sanitizeLabel replaces characters that confuse Mermaid's layout engine.
func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, ":", " ")
	return strings.ReplaceAll(s, ",", " /")
}

// headroom gives the y-axis breathing room above the tallest bar.
func headroom(maxVal int) int {
	return int(math.Max(1, float64(maxVal)*0.2))
}
