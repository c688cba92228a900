package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"spolek/internal/core"
	"spolek/internal/importer"
	"spolek/internal/inventory"
	"spolek/internal/report"
)

// uiText carries the static captions of the UI in one language.
type uiText struct {
	Title     string
	Journal   string
	Reports   string
	Import    string
	Advisor   string
	Checklist string
	Documents string
	Guide     string

	Date           string
	Description    string
	Amount         string
	Type           string
	Activity       string
	Tax            string
	VariableSymbol string
	Note           string
	Actions        string

	Income        string
	Expense       string
	Taxable       string
	NonTaxable    string
	Deductible    string
	NonDeductible string

	Add       string
	Delete    string
	Filter    string
	Confirm   string
	Cancel    string
	Upload    string
	Ask       string
	Advise    string
	Generate  string
	Download  string
	Duplicate string
	All       string

	TotalIncome     string
	TotalExpense    string
	Balance         string
	MainResult      string
	SecondaryResult string
	TaxBase         string
	EstimatedTax    string
	CashBalance     string
	BankBalance     string
	EntryCount      string
}

var uiTexts = map[core.Language]uiText{
	core.Czech: {
		Title:     "Účetnictví spolku",
		Journal:   "Peněžní deník",
		Reports:   "Přehledy",
		Import:    "Import",
		Advisor:   "Poradce",
		Checklist: "Povinnosti",
		Documents: "Dokumenty",
		Guide:     "Příručka",

		Date:           "Datum",
		Description:    "Popis",
		Amount:         "Částka",
		Type:           "Typ",
		Activity:       "Činnost",
		Tax:            "Daňová kategorie",
		VariableSymbol: "Variabilní symbol",
		Note:           "Poznámka",
		Actions:        "Akce",

		Income:        "Příjem",
		Expense:       "Výdaj",
		Taxable:       "Zdaňované",
		NonTaxable:    "Osvobozené",
		Deductible:    "Daňově uznatelné",
		NonDeductible: "Daňově neuznatelné",

		Add:       "Přidat",
		Delete:    "Smazat",
		Filter:    "Filtrovat",
		Confirm:   "Potvrdit",
		Cancel:    "Zrušit",
		Upload:    "Nahrát",
		Ask:       "Zeptat se",
		Advise:    "Poradit",
		Generate:  "Vygenerovat",
		Download:  "Stáhnout",
		Duplicate: "Možný duplikát",
		All:       "Vše",

		TotalIncome:     "Příjmy celkem",
		TotalExpense:    "Výdaje celkem",
		Balance:         "Výsledek",
		MainResult:      "Hlavní činnost",
		SecondaryResult: "Vedlejší činnost",
		TaxBase:         "Základ daně",
		EstimatedTax:    "Odhad daně (19 %)",
		CashBalance:     "Pokladna",
		BankBalance:     "Banka",
		EntryCount:      "Počet záznamů",
	},
	core.English: {
		Title:     "Association Bookkeeping",
		Journal:   "Cash Journal",
		Reports:   "Reports",
		Import:    "Import",
		Advisor:   "Advisor",
		Checklist: "Obligations",
		Documents: "Documents",
		Guide:     "Guide",

		Date:           "Date",
		Description:    "Description",
		Amount:         "Amount",
		Type:           "Type",
		Activity:       "Activity",
		Tax:            "Tax category",
		VariableSymbol: "Variable symbol",
		Note:           "Note",
		Actions:        "Actions",

		Income:        "Income",
		Expense:       "Expense",
		Taxable:       "Taxable",
		NonTaxable:    "Exempt",
		Deductible:    "Tax deductible",
		NonDeductible: "Non-deductible",

		Add:       "Add",
		Delete:    "Delete",
		Filter:    "Filter",
		Confirm:   "Confirm",
		Cancel:    "Cancel",
		Upload:    "Upload",
		Ask:       "Ask",
		Advise:    "Advise",
		Generate:  "Generate",
		Download:  "Download",
		Duplicate: "Possible duplicate",
		All:       "All",

		TotalIncome:     "Total income",
		TotalExpense:    "Total expenses",
		Balance:         "Result",
		MainResult:      "Main activity",
		SecondaryResult: "Secondary activity",
		TaxBase:         "Tax base",
		EstimatedTax:    "Estimated tax (19%)",
		CashBalance:     "Cash",
		BankBalance:     "Bank",
		EntryCount:      "Entries",
	},
}

func textsFor(lang core.Language) uiText {
	if t, ok := uiTexts[lang]; ok {
		return t
	}
	return uiTexts[core.Czech]
}

// entryView is one journal row prepared for the template.
type entryView struct {
	ID             string
	Date           string
	Description    string
	Amount         string
	TypeLabel      string
	ActivityLabel  string
	TaxLabel       string
	VariableSymbol string
	Note           string
	IsExpense      bool
}

func newEntryView(t core.Transaction, lang core.Language) entryView {
	return entryView{
		ID:             t.ID,
		Date:           t.Date.ISO(),
		Description:    t.Description,
		Amount:         core.FormatCZK(t.Amount.Cents),
		TypeLabel:      t.Type.Label(lang),
		ActivityLabel:  t.ActivityType.Label(lang),
		TaxLabel:       t.TaxCategory.Label(lang),
		VariableSymbol: t.VariableSymbol,
		Note:           t.Note,
		IsExpense:      t.Type == core.Expense,
	}
}

// summaryView is the report card with every figure already formatted.
type summaryView struct {
	TotalIncome     string
	TotalExpense    string
	Balance         string
	MainResult      string
	SecondaryResult string
	TaxBase         string
	EstimatedTax    string
	CashBalance     string
	BankBalance     string
	Count           int
	Negative        bool
}

func newSummaryView(s report.Summary) summaryView {
	return summaryView{
		TotalIncome:     core.FormatCZK(s.TotalIncome),
		TotalExpense:    core.FormatCZK(s.TotalExpense),
		Balance:         core.FormatCZK(s.Balance),
		MainResult:      core.FormatCZK(s.MainResult),
		SecondaryResult: core.FormatCZK(s.SecondaryResult),
		TaxBase:         core.FormatCZK(s.TaxBase),
		EstimatedTax:    core.FormatCZK(s.EstimatedTax),
		CashBalance:     core.FormatCZK(s.CashBalance),
		BankBalance:     core.FormatCZK(s.BankBalance),
		Count:           s.Count,
		Negative:        s.Balance < 0,
	}
}

// candidateView is one import candidate row.
type candidateView struct {
	TempID          string
	Date            string
	Description     string
	Amount          string
	TypeLabel       string
	ActivityLabel   string
	TaxLabel        string
	VariableSymbol  string
	IsDuplicate     bool
	DuplicateReason string
	Selected        bool
}

func newCandidateView(c importer.Candidate, lang core.Language) candidateView {
	return candidateView{
		TempID:          c.TempID,
		Date:            c.Date.ISO(),
		Description:     c.Description,
		Amount:          core.FormatCZK(c.Amount.Cents),
		TypeLabel:       c.Type.Label(lang),
		ActivityLabel:   c.ActivityType.Label(lang),
		TaxLabel:        c.TaxCategory.Label(lang),
		VariableSymbol:  c.VariableSymbol,
		IsDuplicate:     c.IsDuplicate,
		DuplicateReason: c.DuplicateReason,
		Selected:        c.Selected,
	}
}

type assetView struct {
	Name  string
	Value string
}

func newAssetViews(assets []inventory.Asset) []assetView {
	views := make([]assetView, 0, len(assets))
	for _, a := range assets {
		views = append(views, assetView{Name: a.Name, Value: core.FormatCZK(a.Value)})
	}
	return views
}

// render executes a named template into a buffer first so a template error
// never produces a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		errorFragment(http.StatusInternalServerError, errorsFor(s.lang).RenderFailed).Write(w)
		return
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template render failed",
			"template", name,
			"error", err)
		errorFragment(http.StatusInternalServerError, errorsFor(s.requestLanguage(r)).RenderFailed).Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
