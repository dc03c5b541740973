package lendbook

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestExportTimeline(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(NewTransaction(D("2023-01-01"), LoanOut, A(1000), `the "big" one`))
	ledger.Insert(NewTransaction(D("2023-02-01"), Payment, A(100), ""))

	timeline := ledger.ComputeTimeline(0.0825, D("2023-03-01"))

	var buf bytes.Buffer
	if err := ExportTimeline(&buf, timeline, DefaultConfig()); err != nil {
		t.Fatalf("ExportTimeline: %v", err)
	}
	out := buf.String()

	// embedded quotes are escaped by doubling
	if !strings.Contains(out, `"the ""big"" one"`) {
		t.Errorf("quotes are not doubled in:\n%s", out)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	// header + 2 transactions + trailing interest row
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if got := strings.Join(records[0], ","); got != "Date,Type,Amount,Days Since Last Entry,Interest Accrued,Running Balance,Notes" {
		t.Errorf("header = %q", got)
	}
	if records[1][1] != "Loan Out" || records[2][1] != "Payment" {
		t.Errorf("type labels = %q, %q", records[1][1], records[2][1])
	}

	trailing := records[3]
	if trailing[1] != "Interest" {
		t.Errorf("trailing row type = %q, want Interest", trailing[1])
	}
	if trailing[2] != "" {
		t.Errorf("trailing row amount = %q, want empty", trailing[2])
	}
	if trailing[3] != "28" { // 2023-02-01 to 2023-03-01
		t.Errorf("trailing row days = %q, want 28", trailing[3])
	}
}

func TestExportTimeline_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportTimeline(&buf, nil, DefaultConfig()); err != nil {
		t.Fatalf("ExportTimeline: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("empty export has %d lines, want header only", got)
	}
}
