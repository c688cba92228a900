package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"spolek/internal/core"
	"spolek/internal/importer"
)

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the strict-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Keep only the outermost JSON value if junk remains around it. The
	// earlier opener decides whether we are looking at an array or an object.
	opener, closer := "{", "}"
	if a, o := strings.Index(s, "["), strings.Index(s, "{"); a != -1 && (o == -1 || a < o) {
		opener, closer = "[", "]"
	}
	start := strings.Index(s, opener)
	end := strings.LastIndex(s, closer)
	if start != -1 && end > start {
		return strings.TrimSpace(s[start : end+1])
	}
	return s
}

type rawDraft struct {
	Date                 string  `json:"date"`
	Description          string  `json:"description"`
	Amount               float64 `json:"amount"`
	Type                 string  `json:"type"`
	VariableSymbol       string  `json:"variableSymbol"`
	SuggestedActivity    string  `json:"suggestedActivity"`
	SuggestedTaxCategory string  `json:"suggestedTaxCategory"`
}

type rawSuggestion struct {
	SuggestedType        string `json:"suggestedType"`
	SuggestedActivity    string `json:"suggestedActivity"`
	SuggestedTaxCategory string `json:"suggestedTaxCategory"`
	Reasoning            string `json:"reasoning"`
}

// decodeDrafts turns the model's JSON array into import drafts. A malformed
// record fails the whole extraction; a half-parsed statement is worse than
// an aborted import session.
func decodeDrafts(raw string) ([]importer.Draft, error) {
	var rows []rawDraft
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &rows); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}

	drafts := make([]importer.Draft, 0, len(rows))
	for i, r := range rows {
		date, err := core.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("draft %d: invalid date %q", i, r.Date)
		}
		cents := int64(math.Round(math.Abs(r.Amount) * 100))
		if cents == 0 {
			return nil, fmt.Errorf("draft %d: invalid amount %v", i, r.Amount)
		}
		typ, err := normalizeType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
		drafts = append(drafts, importer.Draft{
			Date:           date,
			Description:    strings.TrimSpace(r.Description),
			Amount:         core.Money{Cents: cents},
			Type:           typ,
			ActivityType:   normalizeActivity(r.SuggestedActivity),
			TaxCategory:    normalizeTax(r.SuggestedTaxCategory, typ),
			VariableSymbol: strings.TrimSpace(r.VariableSymbol),
		})
	}
	return drafts, nil
}

func decodeSuggestion(raw string) (Suggestion, error) {
	var r rawSuggestion
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &r); err != nil {
		return Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}
	typ, err := normalizeType(r.SuggestedType)
	if err != nil {
		return Suggestion{}, err
	}
	return Suggestion{
		Type:        typ,
		Activity:    normalizeActivity(r.SuggestedActivity),
		TaxCategory: normalizeTax(r.SuggestedTaxCategory, typ),
		Reasoning:   r.Reasoning,
	}, nil
}

// The normalizers accept the stable tags plus the Czech display labels,
// since models occasionally echo the label instead of the tag.

func normalizeType(s string) (core.TransactionType, error) {
	switch strings.TrimSpace(s) {
	case string(core.Income), core.Income.Label(core.Czech):
		return core.Income, nil
	case string(core.Expense), core.Expense.Label(core.Czech):
		return core.Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

func normalizeActivity(s string) core.ActivityType {
	switch strings.TrimSpace(s) {
	case string(core.Secondary), core.Secondary.Label(core.Czech):
		return core.Secondary
	default:
		return core.Main
	}
}

func normalizeTax(s string, typ core.TransactionType) core.TaxCategory {
	switch strings.TrimSpace(s) {
	case string(core.Taxable), core.Taxable.Label(core.Czech):
		return core.Taxable
	case string(core.NonTaxable), core.NonTaxable.Label(core.Czech):
		return core.NonTaxable
	case string(core.Deductible), core.Deductible.Label(core.Czech):
		return core.Deductible
	case string(core.NonDeductible), core.NonDeductible.Label(core.Czech):
		return core.NonDeductible
	default:
		// Sensible per-direction default when the model leaves it out.
		if typ == core.Income {
			return core.NonTaxable
		}
		return core.NonDeductible
	}
}
