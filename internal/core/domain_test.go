package core

import (
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		Date:         NewDate(2024, 1, 15),
		Description:  "Členské příspěvky",
		Amount:       Money{Cents: 1500000},
		Type:         Income,
		ActivityType: Main,
		TaxCategory:  NonTaxable,
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"zero date", func(tx *Transaction) { tx.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
		{"empty description", func(tx *Transaction) { tx.Description = "  " }, ErrEmptyDescription},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"bad type", func(tx *Transaction) { tx.Type = "TRANSFER" }, ErrInvalidType},
		{"bad activity", func(tx *Transaction) { tx.ActivityType = "OTHER" }, ErrInvalidActivity},
		{"bad tax category", func(tx *Transaction) { tx.TaxCategory = "" }, ErrInvalidTaxCat},
	}
	for _, tc := range cases {
		tx := validTransaction()
		tc.mutate(&tx)
		if err := tx.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-10")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.ISO() != "2024-02-10" {
		t.Fatalf("round trip mismatch: %s", d.ISO())
	}
	if _, err := ParseDate("10.2.2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestIsCash(t *testing.T) {
	cases := []struct {
		vs   string
		cash bool
	}{
		{"", true},
		{CashSymbol, true},
		{"2024001", false},
	}
	for _, tc := range cases {
		tx := validTransaction()
		tx.VariableSymbol = tc.vs
		if got := tx.IsCash(); got != tc.cash {
			t.Fatalf("variableSymbol %q: expected cash=%v, got %v", tc.vs, tc.cash, got)
		}
	}
}

func TestSigned(t *testing.T) {
	tx := validTransaction()
	if tx.Signed() != 1500000 {
		t.Fatalf("income should be positive, got %d", tx.Signed())
	}
	tx.Type = Expense
	if tx.Signed() != -1500000 {
		t.Fatalf("expense should be negative, got %d", tx.Signed())
	}
}

func TestLabels(t *testing.T) {
	if got := Income.Label(Czech); got != "Příjem" {
		t.Fatalf("unexpected Czech label %q", got)
	}
	if got := Income.Label(English); got != "Income" {
		t.Fatalf("unexpected English label %q", got)
	}
	// Unknown language falls back to Czech.
	if got := Secondary.Label("de"); got != "Hospodářská činnost (Vedlejší)" {
		t.Fatalf("unexpected fallback label %q", got)
	}
}
