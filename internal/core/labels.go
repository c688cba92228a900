package core

// Display labels for the classification enums. The domain model carries only
// the stable tags; rendering picks a label by language so new locales never
// touch stored data.

// Language selects a label set. Czech is the default.
type Language string

const (
	Czech   Language = "cs"
	English Language = "en"
)

var typeLabels = map[Language]map[TransactionType]string{
	Czech:   {Income: "Příjem", Expense: "Výdaj"},
	English: {Income: "Income", Expense: "Expense"},
}

var activityLabels = map[Language]map[ActivityType]string{
	Czech: {
		Main:      "Hlavní činnost (Poslání)",
		Secondary: "Hospodářská činnost (Vedlejší)",
	},
	English: {
		Main:      "Main activity (Mission)",
		Secondary: "Economic activity (Secondary)",
	},
}

var taxLabels = map[Language]map[TaxCategory]string{
	Czech: {
		Taxable:       "Zdaňované",
		NonTaxable:    "Osvobozené",
		Deductible:    "Daňově uznatelné",
		NonDeductible: "Daňově neuznatelné",
	},
	English: {
		Taxable:       "Taxable",
		NonTaxable:    "Exempt",
		Deductible:    "Tax deductible",
		NonDeductible: "Non-deductible",
	},
}

func (t TransactionType) Label(lang Language) string {
	return lookupLabel(typeLabels, lang, t)
}

func (a ActivityType) Label(lang Language) string {
	return lookupLabel(activityLabels, lang, a)
}

func (c TaxCategory) Label(lang Language) string {
	return lookupLabel(taxLabels, lang, c)
}

func lookupLabel[K comparable](m map[Language]map[K]string, lang Language, k K) string {
	if set, ok := m[lang]; ok {
		if l, ok := set[k]; ok {
			return l
		}
	}
	if l, ok := m[Czech][k]; ok {
		return l
	}
	return ""
}

// NormalizeLanguage maps arbitrary input to a supported language, defaulting
// to Czech.
func NormalizeLanguage(s string) Language {
	if Language(s) == English {
		return English
	}
	return Czech
}
