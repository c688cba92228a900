// Package report computes the derived financial figures shown on the
// dashboard and statutory reports. Everything here is a pure function of the
// journal snapshot: figures are recomputed on every call and never cached,
// so there is no invalidation to manage.
package report

import (
	"spolek/internal/core"
)

// TaxRatePercent is the flat corporate income tax rate applied to the tax
// base. A simplification, not a full Czech tax computation.
const TaxRatePercent = 19

// Summary is one consistent snapshot of the derived figures, in cents.
type Summary struct {
	TotalIncome     int64
	TotalExpense    int64
	Balance         int64
	MainResult      int64
	SecondaryResult int64
	TaxBase         int64
	EstimatedTax    int64
	CashBalance     int64
	BankBalance     int64
	Count           int
}

// Compute derives the full summary from a journal snapshot. An empty
// collection yields all-zero figures.
func Compute(entries []core.Transaction) Summary {
	s := Summary{Count: len(entries)}
	for _, t := range entries {
		switch t.Type {
		case core.Income:
			s.TotalIncome += t.Amount.Cents
		case core.Expense:
			s.TotalExpense += t.Amount.Cents
		}
		signed := t.Signed()
		switch t.ActivityType {
		case core.Main:
			s.MainResult += signed
		case core.Secondary:
			s.SecondaryResult += signed
		}
		// Cash/bank is a full partition: every entry lands in exactly one
		// bucket.
		if t.IsCash() {
			s.CashBalance += signed
		} else {
			s.BankBalance += signed
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	s.TaxBase = taxBase(s.SecondaryResult)
	s.EstimatedTax = EstimatedTax(s.SecondaryResult)
	return s
}

// ActivityResult sums entries of one activity with the direction applied.
func ActivityResult(entries []core.Transaction, activity core.ActivityType) int64 {
	var sum int64
	for _, t := range entries {
		if t.ActivityType == activity {
			sum += t.Signed()
		}
	}
	return sum
}

// taxBase clamps the secondary-activity result at zero: a loss from the
// ancillary economic activity is not deductible against the base under this
// simplified model.
func taxBase(secondaryResult int64) int64 {
	if secondaryResult > 0 {
		return secondaryResult
	}
	return 0
}

// EstimatedTax is taxBase × 19 %, rounded half-up to whole cents.
func EstimatedTax(secondaryResult int64) int64 {
	base := taxBase(secondaryResult)
	return (base*TaxRatePercent + 50) / 100
}
