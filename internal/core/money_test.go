package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"15000", 1500000, true},
		{"15 000", 1500000, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+5", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestDecimalString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1500000, "15000"},
		{1234, "12.34"},
		{100, "1"},
		{5, "0.05"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).DecimalString(); got != tc.want {
			t.Fatalf("%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestFormatCZK(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1500000, "15 000,00 Kč"},
		{123456789, "1 234 567,89 Kč"},
		{-5000, "-50,00 Kč"},
		{0, "0,00 Kč"},
	}
	for _, tc := range cases {
		if got := FormatCZK(tc.cents); got != tc.want {
			t.Fatalf("%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}
