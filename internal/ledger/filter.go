package ledger

import (
	"strings"

	"spolek/internal/core"
)

// Criteria is the journal filter set. All supplied criteria must match
// (logical AND); an empty criterion matches everything. Date and amount are
// matched as substrings of their string forms on purpose: "2024-02" finds a
// month, "12" finds 12, 120 and 512 alike.
type Criteria struct {
	Date        string
	Description string
	Activity    core.ActivityType
	TaxCategory core.TaxCategory
	Amount      string
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.Date == "" && c.Description == "" && c.Activity == "" &&
		c.TaxCategory == "" && c.Amount == ""
}

// Matches reports whether the entry satisfies every supplied criterion. The
// description criterion is case-insensitive and also matches the variable
// symbol, so a payment reference can be searched from the same box.
func (c Criteria) Matches(t core.Transaction) bool {
	if c.Date != "" && !strings.Contains(t.Date.ISO(), c.Date) {
		return false
	}
	if c.Description != "" {
		needle := strings.ToLower(c.Description)
		inDesc := strings.Contains(strings.ToLower(t.Description), needle)
		inSymbol := t.VariableSymbol != "" && strings.Contains(t.VariableSymbol, c.Description)
		if !inDesc && !inSymbol {
			return false
		}
	}
	if c.Activity != "" && t.ActivityType != c.Activity {
		return false
	}
	if c.TaxCategory != "" && t.TaxCategory != c.TaxCategory {
		return false
	}
	if c.Amount != "" && !strings.Contains(t.Amount.DecimalString(), c.Amount) {
		return false
	}
	return true
}

// Apply returns the subsequence of entries matching the criteria, preserving
// order.
func (c Criteria) Apply(entries []core.Transaction) []core.Transaction {
	if c.Empty() {
		return entries
	}
	out := make([]core.Transaction, 0, len(entries))
	for _, t := range entries {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
