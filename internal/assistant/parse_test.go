package assistant

import (
	"testing"

	"spolek/internal/core"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced", "```json\n[1,2]\n```", "[1,2]"},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", `Here you go: {"a":[1]} hope it helps`, `{"a":[1]}`},
		{"prose around array", `Result: [1,2,3].`, `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.in); got != tt.want {
				t.Errorf("cleanModelJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeDrafts(t *testing.T) {
	raw := `[
		{"date":"2024-01-15","description":"Dotace","amount":15000,"type":"INCOME","variableSymbol":"123","suggestedActivity":"MAIN","suggestedTaxCategory":"NON_TAXABLE"},
		{"date":"2024-01-20","description":"Nájem","amount":-5000.50,"type":"EXPENSE","variableSymbol":"","suggestedActivity":"SECONDARY","suggestedTaxCategory":"DEDUCTIBLE"}
	]`
	drafts, err := decodeDrafts(raw)
	if err != nil {
		t.Fatalf("decodeDrafts() error = %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}
	if drafts[0].Amount.Cents != 1500000 || drafts[0].Type != core.Income {
		t.Errorf("draft 0 = %+v", drafts[0])
	}
	// Negative magnitudes from sloppy model output are folded to absolute.
	if drafts[1].Amount.Cents != 500050 {
		t.Errorf("draft 1 amount = %d, want 500050", drafts[1].Amount.Cents)
	}
	if drafts[1].ActivityType != core.Secondary || drafts[1].TaxCategory != core.Deductible {
		t.Errorf("draft 1 = %+v", drafts[1])
	}
}

func TestDecodeDraftsRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "no data found"},
		{"bad date", `[{"date":"15.1.2024","description":"x","amount":1,"type":"INCOME"}]`},
		{"zero amount", `[{"date":"2024-01-15","description":"x","amount":0,"type":"INCOME"}]`},
		{"unknown type", `[{"date":"2024-01-15","description":"x","amount":1,"type":"TRANSFER"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeDrafts(tt.raw); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeSuggestionNormalizesLabels(t *testing.T) {
	// Models sometimes answer with the Czech display labels.
	raw := `{"suggestedType":"Výdaj","suggestedActivity":"Hospodářská činnost (Vedlejší)","suggestedTaxCategory":"Daňově uznatelné","reasoning":"nákup materiálu"}`
	s, err := decodeSuggestion(raw)
	if err != nil {
		t.Fatalf("decodeSuggestion() error = %v", err)
	}
	if s.Type != core.Expense || s.Activity != core.Secondary || s.TaxCategory != core.Deductible {
		t.Errorf("suggestion = %+v", s)
	}
}

func TestDecodeSuggestionDefaults(t *testing.T) {
	s, err := decodeSuggestion(`{"suggestedType":"INCOME"}`)
	if err != nil {
		t.Fatalf("decodeSuggestion() error = %v", err)
	}
	if s.Activity != core.Main || s.TaxCategory != core.NonTaxable {
		t.Errorf("defaults = %+v", s)
	}
	s, err = decodeSuggestion(`{"suggestedType":"EXPENSE"}`)
	if err != nil {
		t.Fatalf("decodeSuggestion() error = %v", err)
	}
	if s.TaxCategory != core.NonDeductible {
		t.Errorf("expense default tax = %v", s.TaxCategory)
	}
}
