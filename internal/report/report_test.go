package report

import (
	"testing"

	"spolek/internal/core"
)

func tx(date string, cents int64, typ core.TransactionType, act core.ActivityType, vs string) core.Transaction {
	d, _ := core.ParseDate(date)
	return core.Transaction{
		Date: d, Description: "e", Amount: core.Money{Cents: cents},
		Type: typ, ActivityType: act, TaxCategory: core.Taxable,
		VariableSymbol: vs,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	if s != (Summary{}) {
		t.Fatalf("empty collection must yield all zeros, got %+v", s)
	}
}

func TestComputeEndToEnd(t *testing.T) {
	// 15000 income, 5000 expense, 8000 income (amounts in CZK).
	entries := []core.Transaction{
		tx("2024-01-15", 1500000, core.Income, core.Main, "CASH"),
		tx("2024-02-10", 500000, core.Expense, core.Main, ""),
		tx("2024-03-05", 800000, core.Income, core.Secondary, "777"),
	}
	s := Compute(entries)
	if s.TotalIncome != 2300000 {
		t.Fatalf("totalIncome: expected 2300000, got %d", s.TotalIncome)
	}
	if s.TotalExpense != 500000 {
		t.Fatalf("totalExpense: expected 500000, got %d", s.TotalExpense)
	}
	if s.Balance != 1800000 {
		t.Fatalf("balance: expected 1800000, got %d", s.Balance)
	}
	if s.Balance != s.TotalIncome-s.TotalExpense {
		t.Fatalf("balance identity broken")
	}
}

func TestActivityResultAndTax(t *testing.T) {
	entries := []core.Transaction{
		tx("2024-01-15", 1500000, core.Income, core.Main, ""),
		tx("2024-02-10", 500000, core.Expense, core.Main, ""),
		tx("2024-03-05", 800000, core.Income, core.Secondary, ""),
		tx("2024-03-20", 300000, core.Expense, core.Secondary, ""),
	}
	if got := ActivityResult(entries, core.Main); got != 1000000 {
		t.Fatalf("main result: expected 1000000, got %d", got)
	}
	if got := ActivityResult(entries, core.Secondary); got != 500000 {
		t.Fatalf("secondary result: expected 500000, got %d", got)
	}
	s := Compute(entries)
	if s.TaxBase != 500000 {
		t.Fatalf("taxBase: expected 500000, got %d", s.TaxBase)
	}
	// 5000 CZK × 0.19 = 950 CZK.
	if s.EstimatedTax != 95000 {
		t.Fatalf("estimatedTax: expected 95000, got %d", s.EstimatedTax)
	}
}

func TestNegativeSecondaryYieldsZeroTax(t *testing.T) {
	entries := []core.Transaction{
		tx("2024-01-15", 800000, core.Expense, core.Secondary, ""),
		tx("2024-02-10", 300000, core.Income, core.Secondary, ""),
	}
	s := Compute(entries)
	if s.SecondaryResult != -500000 {
		t.Fatalf("secondary result: expected -500000, got %d", s.SecondaryResult)
	}
	if s.TaxBase != 0 || s.EstimatedTax != 0 {
		t.Fatalf("loss must yield zero tax base and tax, got base=%d tax=%d", s.TaxBase, s.EstimatedTax)
	}
}

func TestEstimatedTaxRounding(t *testing.T) {
	// 1.03 CZK base → 19.57 haléřů tax → rounds to 20.
	if got := EstimatedTax(103); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if got := EstimatedTax(-1); got != 0 {
		t.Fatalf("expected 0 for negative base, got %d", got)
	}
}

func TestCashBankSplitIsAPartition(t *testing.T) {
	entries := []core.Transaction{
		tx("2024-01-15", 1500000, core.Income, core.Main, "CASH"),
		tx("2024-02-10", 500000, core.Expense, core.Main, ""), // empty symbol = cash
		tx("2024-03-05", 800000, core.Income, core.Secondary, "2024001"),
		tx("2024-03-20", 200000, core.Expense, core.Secondary, "2024002"),
	}
	s := Compute(entries)
	if s.CashBalance != 1000000 {
		t.Fatalf("cash: expected 1000000, got %d", s.CashBalance)
	}
	if s.BankBalance != 600000 {
		t.Fatalf("bank: expected 600000, got %d", s.BankBalance)
	}
	if s.CashBalance+s.BankBalance != s.Balance {
		t.Fatalf("cash+bank must equal balance: %d+%d != %d", s.CashBalance, s.BankBalance, s.Balance)
	}
}
