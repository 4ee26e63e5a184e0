package residents

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvDateLayout matches the report-friendly format the dashboard table
// displays.
const csvDateLayout = "02 Jan 2006"

// WriteCSV streams the resident set as CSV for download, one row per
// rotation.
func WriteCSV(w io.Writer, rs []Resident) error {
	cw := csv.NewWriter(w)

	header := []string{"Name", "Hospital", "Type", "Start Date", "End Date", "Duration (Days)"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rs {
		row := []string{
			r.Name,
			r.Hospital,
			r.RotationType,
			r.StartDate.Format(csvDateLayout),
			r.EndDate.Format(csvDateLayout),
			strconv.Itoa(r.DurationDays),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
