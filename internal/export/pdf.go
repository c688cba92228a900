package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"spolek/internal/core"
	"spolek/internal/inventory"
	"spolek/internal/report"
)

// pdfStrings holds the per-language captions of the PDF documents.
type pdfStrings struct {
	ReportTitle     string
	IncomeStatement string
	Item            string
	Amount          string
	TotalIncome     string
	TotalExpenses   string
	EconomicResult  string
	TaxLiability    string
	ResultMain      string
	ResultSecondary string
	EstimatedTax    string
	InventoryTitle  string
	Date            string
	FinancialAssets string
	Cash            string
	Bank            string
	TangibleAssets  string
	Value           string
	Total           string
	Currency        string
}

var pdfLocales = map[core.Language]pdfStrings{
	core.Czech: {
		ReportTitle:     "Finanční přehled spolku",
		IncomeStatement: "Výkaz zisku a ztráty",
		Item:            "Položka",
		Amount:          "Částka",
		TotalIncome:     "Celkové příjmy",
		TotalExpenses:   "Celkové výdaje",
		EconomicResult:  "Hospodářský výsledek",
		TaxLiability:    "Daňová povinnost",
		ResultMain:      "Výsledek hlavní činnosti",
		ResultSecondary: "Výsledek vedlejší činnosti",
		EstimatedTax:    "Odhad daně (19 %)",
		InventoryTitle:  "Inventarizační protokol",
		Date:            "Datum",
		FinancialAssets: "Finanční majetek",
		Cash:            "Pokladna (hotovost)",
		Bank:            "Bankovní účet",
		TangibleAssets:  "Hmotný majetek",
		Value:           "Hodnota",
		Total:           "Celkem",
		Currency:        "Kč",
	},
	core.English: {
		ReportTitle:     "Association financial report",
		IncomeStatement: "Income statement",
		Item:            "Item",
		Amount:          "Amount",
		TotalIncome:     "Total income",
		TotalExpenses:   "Total expenses",
		EconomicResult:  "Economic result",
		TaxLiability:    "Tax liability",
		ResultMain:      "Main activity result",
		ResultSecondary: "Secondary activity result",
		EstimatedTax:    "Estimated tax (19 %)",
		InventoryTitle:  "Inventory protocol",
		Date:            "Date",
		FinancialAssets: "Financial assets",
		Cash:            "Cash on hand",
		Bank:            "Bank account",
		TangibleAssets:  "Tangible assets",
		Value:           "Value",
		Total:           "Total",
		Currency:        "CZK",
	},
}

func pdfLocale(lang core.Language) pdfStrings {
	if s, ok := pdfLocales[lang]; ok {
		return s
	}
	return pdfLocales[core.Czech]
}

// newDocument builds an A4 portrait page with a cp1250 translator so Czech
// diacritics render with the core fonts.
func newDocument() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()
	return pdf, tr
}

func czk(cents int64, currency string) string {
	return fmt.Sprintf("%s %s", core.Money{Cents: cents}.DecimalString(), currency)
}

// ReportPDF renders the financial report: income statement plus the tax
// liability section.
func ReportPDF(s report.Summary, lang core.Language) ([]byte, error) {
	loc := pdfLocale(lang)
	pdf, tr := newDocument()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, tr(loc.ReportTitle))
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(loc.IncomeStatement))
	pdf.Ln(10)

	pdfRow(pdf, tr, loc.Item, loc.Amount, true)
	pdfRow(pdf, tr, loc.TotalIncome, czk(s.TotalIncome, loc.Currency), false)
	pdfRow(pdf, tr, loc.TotalExpenses, czk(s.TotalExpense, loc.Currency), false)
	pdfRow(pdf, tr, loc.EconomicResult, czk(s.Balance, loc.Currency), true)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(loc.TaxLiability))
	pdf.Ln(10)

	pdfRow(pdf, tr, loc.ResultMain, czk(s.MainResult, loc.Currency), false)
	pdfRow(pdf, tr, loc.ResultSecondary, czk(s.SecondaryResult, loc.Currency), false)
	pdfRow(pdf, tr, loc.EstimatedTax, czk(s.EstimatedTax, loc.Currency), true)

	return pdfOutput(pdf)
}

// InventoryPDF renders the annual inventory protocol: financial balances,
// the tangible asset list and a signature line.
func InventoryPDF(s report.Summary, assets []inventory.Asset, lang core.Language) ([]byte, error) {
	loc := pdfLocale(lang)
	pdf, tr := newDocument()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(loc.InventoryTitle))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", loc.Date, time.Now().Format("02.01.2006"))))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr("1. "+loc.FinancialAssets))
	pdf.Ln(10)
	pdfRow(pdf, tr, loc.Cash, czk(s.CashBalance, loc.Currency), false)
	pdfRow(pdf, tr, loc.Bank, czk(s.BankBalance, loc.Currency), false)
	pdfRow(pdf, tr, loc.Total, czk(s.CashBalance+s.BankBalance, loc.Currency), true)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr("2. "+loc.TangibleAssets))
	pdf.Ln(10)
	pdfRow(pdf, tr, loc.Item, loc.Value, true)
	var total int64
	for _, a := range assets {
		pdfRow(pdf, tr, a.Name, czk(a.Value, loc.Currency), false)
		total += a.Value
	}
	pdfRow(pdf, tr, loc.Total, czk(total, loc.Currency), true)

	pdf.Ln(30)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "................................................", "", 1, "R", false, 0, "")

	return pdfOutput(pdf)
}

// MinutesPDF renders generated meeting-minutes text as a plain document.
func MinutesPDF(text string) ([]byte, error) {
	pdf, tr := newDocument()
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(text), "", "L", false)
	return pdfOutput(pdf)
}

func pdfRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 11)
	pdf.CellFormat(120, 8, tr(label), "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr(value), "B", 1, "R", false, 0, "")
}

func pdfOutput(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
