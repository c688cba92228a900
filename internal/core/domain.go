package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"

	Main      ActivityType = "MAIN"
	Secondary ActivityType = "SECONDARY"

	Taxable       TaxCategory = "TAXABLE"
	NonTaxable    TaxCategory = "NON_TAXABLE"
	Deductible    TaxCategory = "DEDUCTIBLE"
	NonDeductible TaxCategory = "NON_DEDUCTIBLE"

	// CashSymbol is the sentinel variable symbol marking a cash-drawer
	// transaction. An empty variable symbol means the same thing.
	CashSymbol = "CASH"
)

type (
	// TransactionType is the direction of cash flow.
	TransactionType string

	// ActivityType classifies which statutory activity of the association a
	// transaction belongs to: mission work (MAIN) or ancillary economic
	// activity (SECONDARY).
	ActivityType string

	// TaxCategory is the tax treatment of the transaction, independent of
	// type and activity.
	TaxCategory string

	Date struct {
		time.Time
	}

	// Money is a monetary magnitude in haléře (hundredths of CZK). The sign
	// never carries direction; TransactionType does.
	Money struct {
		Cents int64
	}

	// Transaction is a single entry of the cash journal. ID is assigned by
	// the ledger store at insert time and never changes; entries are never
	// edited in place (edits are delete + recreate).
	Transaction struct {
		ID             string
		Date           Date
		Description    string
		Amount         Money
		Type           TransactionType
		ActivityType   ActivityType
		TaxCategory    TaxCategory
		VariableSymbol string
		Note           string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidActivity  = errors.New("invalid activity type")
	ErrInvalidTaxCat    = errors.New("invalid tax category")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (a ActivityType) Valid() bool {
	return a == Main || a == Secondary
}

func (c TaxCategory) Valid() bool {
	switch c {
	case Taxable, NonTaxable, Deductible, NonDeductible:
		return true
	default:
		return false
	}
}

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ISO renders the date as YYYY-MM-DD, the wire and display form everywhere
// in the journal.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsCash reports whether the transaction belongs to the cash drawer: no
// variable symbol, or the CASH sentinel.
func (t Transaction) IsCash() bool {
	return t.VariableSymbol == "" || t.VariableSymbol == CashSymbol
}

// Signed returns the amount in cents with the direction applied: positive
// for income, negative for expense.
func (t Transaction) Signed() int64 {
	if t.Type == Expense {
		return -t.Amount.Cents
	}
	return t.Amount.Cents
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.ActivityType.Valid() {
		return ErrInvalidActivity
	}
	if !t.TaxCategory.Valid() {
		return ErrInvalidTaxCat
	}
	return nil
}
