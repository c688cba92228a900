// Package core holds the language-independent domain model of the journal:
// transactions, their classification enums, dates and money amounts.
//
// This file contains parsing and formatting of monetary amounts. Amounts are
// kept in haléře (hundredths of CZK) to avoid floating point in calculations.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot (12.34) and comma (12,34)
// separators are accepted. Only positive amounts are valid.
//
// Examples:
//
//	ParseDecimalToCents("15000") -> 1500000, nil
//	ParseDecimalToCents("12,34") -> 1234, nil
//	ParseDecimalToCents("12.346") -> 1235, nil (rounds up)
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Accept the thousands-space people paste from bank statements.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// CZK returns the crown value as float64 for display only. Calculations use
// cents.
func (m Money) CZK() float64 {
	return float64(m.Cents) / 100.0
}

// DecimalString renders cents as a plain decimal string ("12.34"); whole
// amounts drop the fraction ("15000"). This is the string form the journal
// filter matches amount criteria against.
func (m Money) DecimalString() string {
	neg := m.Cents < 0
	c := m.Cents
	if neg {
		c = -c
	}
	whole := c / 100
	rem := c % 100
	var s string
	if rem == 0 {
		s = strconv.FormatInt(whole, 10)
	} else {
		s = strconv.FormatInt(whole, 10) + "." + twoDigits(rem)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatCZK formats cents as a currency string, e.g. "15 000,00 Kč".
func FormatCZK(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)
	// Group thousands with a thin space, the Czech convention.
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(whole[i : i+3])
	}
	s := b.String() + "," + twoDigits(cents%100) + " Kč"
	if neg {
		return "-" + s
	}
	return s
}

func twoDigits(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
