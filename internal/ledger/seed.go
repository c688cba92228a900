package ledger

import "spolek/internal/core"

// DemoEntries returns the starter transactions loaded into a fresh journal
// so the UI opens with data to explore instead of an empty table.
func DemoEntries() []core.Transaction {
	return []core.Transaction{
		{
			Date:           core.NewDate(2024, 1, 15),
			Description:    "Členské příspěvky 2024",
			Amount:         core.Money{Cents: 1500000},
			Type:           core.Income,
			ActivityType:   core.Main,
			TaxCategory:    core.NonTaxable,
			VariableSymbol: "CASH",
		},
		{
			Date:         core.NewDate(2024, 2, 10),
			Description:  "Pronájem sálu na akci",
			Amount:       core.Money{Cents: 500000},
			Type:         core.Expense,
			ActivityType: core.Main,
			TaxCategory:  core.NonDeductible,
		},
		{
			Date:         core.NewDate(2024, 3, 5),
			Description:  "Reklamní banner web",
			Amount:       core.Money{Cents: 800000},
			Type:         core.Income,
			ActivityType: core.Secondary,
			TaxCategory:  core.Taxable,
		},
	}
}
