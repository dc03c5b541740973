package lendbook

import (
	"encoding/csv"
	"fmt"
	"io"
)

// exportHeader is the column layout of the tabular export.
var exportHeader = []string{
	"Date", "Type", "Amount", "Days Since Last Entry",
	"Interest Accrued", "Running Balance", "Notes",
}

// ExportTimeline writes the timeline as CSV, one row per timeline entry.
// The synthetic trailing row is labelled with the configured interest label
// and carries an empty amount column. Quote escaping (doubling embedded
// quotes) is handled by the csv writer.
func ExportTimeline(w io.Writer, timeline []TimelineRow, cfg Config) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, row := range timeline {
		record := make([]string, 0, len(exportHeader))
		if row.IsSynthetic() {
			record = append(record, row.Date.String(), cfg.InterestLabel, "")
		} else {
			record = append(record,
				row.Date.String(),
				cfg.TypeLabel(row.Transaction.Type),
				row.Transaction.Amount.String(),
			)
		}
		record = append(record,
			fmt.Sprintf("%d", row.DaysSincePrevious),
			row.InterestAccrued.String(),
			row.RunningBalanceAfter.String(),
			notesOf(row),
		)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func notesOf(row TimelineRow) string {
	if row.IsSynthetic() {
		return ""
	}
	return row.Transaction.Notes
}
