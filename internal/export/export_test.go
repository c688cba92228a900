package export

import (
	"bytes"
	"context"
	"testing"

	"spolek/internal/core"
	"spolek/internal/inventory"
	"spolek/internal/report"
)

var testSummary = report.Summary{
	TotalIncome:     2300000,
	TotalExpense:    500000,
	Balance:         1800000,
	MainResult:      1000000,
	SecondaryResult: 800000,
	TaxBase:         800000,
	EstimatedTax:    152000,
	CashBalance:     1000000,
	BankBalance:     800000,
	Count:           3,
}

func TestTaxXML(t *testing.T) {
	got, err := TaxXML(testSummary)
	if err != nil {
		t.Fatalf("TaxXML() error = %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<Pisemnost><Data><Prijmy>23000</Prijmy><Vydaje>5000</Vydaje></Data></Pisemnost>`
	if string(got) != want {
		t.Errorf("TaxXML() = %q, want %q", got, want)
	}
}

func TestTaxXMLTruncatesSubCrownAmounts(t *testing.T) {
	got, err := TaxXML(report.Summary{TotalIncome: 99, TotalExpense: 150})
	if err != nil {
		t.Fatalf("TaxXML() error = %v", err)
	}
	if !bytes.Contains(got, []byte("<Prijmy>0</Prijmy>")) || !bytes.Contains(got, []byte("<Vydaje>1</Vydaje>")) {
		t.Errorf("TaxXML() = %s", got)
	}
}

func TestSummaryXLSX(t *testing.T) {
	for _, lang := range []core.Language{core.Czech, core.English} {
		data, err := SummaryXLSX(testSummary, lang)
		if err != nil {
			t.Fatalf("SummaryXLSX(%s) error = %v", lang, err)
		}
		// XLSX is a zip container.
		if len(data) == 0 || !bytes.HasPrefix(data, []byte("PK")) {
			t.Errorf("SummaryXLSX(%s) is not a zip archive", lang)
		}
	}
}

func TestReportPDF(t *testing.T) {
	data, err := ReportPDF(testSummary, core.Czech)
	if err != nil {
		t.Fatalf("ReportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("ReportPDF() output lacks the PDF magic")
	}
}

func TestInventoryPDF(t *testing.T) {
	assets := []inventory.Asset{{Name: "Notebook", Value: 1500000}}
	data, err := InventoryPDF(testSummary, assets, core.English)
	if err != nil {
		t.Fatalf("InventoryPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("InventoryPDF() output lacks the PDF magic")
	}
}

func TestMinutesPDF(t *testing.T) {
	data, err := MinutesPDF("Zápis ze schůze spolku\n\nPřítomni: Novák, Svobodová")
	if err != nil {
		t.Fatalf("MinutesPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("MinutesPDF() output lacks the PDF magic")
	}
}

func TestSheetsDisabledWithoutConfig(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	c, err := NewSheetsFromEnv(context.Background())
	if err != nil {
		t.Fatalf("NewSheetsFromEnv() error = %v", err)
	}
	if c != nil {
		t.Error("expected nil client without configuration")
	}
	// A nil client is a no-op sink.
	if err := c.AppendSnapshot(context.Background(), testSummary); err != nil {
		t.Errorf("nil client AppendSnapshot() error = %v", err)
	}
}
