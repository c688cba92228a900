// Package checklist models the statutory compliance checklist of a Czech
// association. Items live in SQLite; this package holds the domain types and
// the default item set seeded on first start.
package checklist

import "errors"

// Category groups items by when in the year they apply.
type Category string

const (
	Start   Category = "START"
	Ongoing Category = "ONGOING"
	End     Category = "END"
)

func (c Category) Valid() bool {
	switch c {
	case Start, Ongoing, End:
		return true
	}
	return false
}

// Categories is the display order.
var Categories = []Category{Start, Ongoing, End}

// Item is one checklist entry.
type Item struct {
	ID       string
	Text     string
	Category Category
	Checked  bool
}

var ErrNotFound = errors.New("checklist item not found")

// Defaults are the items every fresh database starts with. The texts are
// Czech statutory duties and stay untranslated.
func Defaults() []Item {
	return []Item{
		{ID: "1", Category: Start, Text: "Svolat členskou schůzi a schválit plán činnosti na rok."},
		{ID: "2", Category: Start, Text: "Zkontrolovat platnost údajů ve Veřejném rejstříku (statutární orgán)."},
		{ID: "3", Category: Start, Text: "Zaplatit členství v asociacích (pokud existují)."},
		{ID: "4", Category: Ongoing, Text: "Průběžně evidovat všechny příjmy a výdaje v Peněžním deníku."},
		{ID: "5", Category: Ongoing, Text: "Archivovat originály dokladů (faktury, účtenky) po dobu 5 let."},
		{ID: "6", Category: Ongoing, Text: "Rozlišovat hlavní (poslání) a vedlejší (hospodářskou) činnost na dokladech."},
		{ID: "7", Category: End, Text: "Provést inventarizaci majetku a pokladny k 31.12."},
		{ID: "8", Category: End, Text: "Sestavit Přehled o majetku a závazcích (Rozvaha)."},
		{ID: "9", Category: End, Text: "Podat Daňové přiznání (DPPO) do 31.3. (i když je daň nula, pokud má spolek datovku/registraci)."},
		{ID: "10", Category: End, Text: "Zveřejnit účetní závěrku ve Sbírce listin rejstříkového soudu."},
	}
}

// ByCategory splits items into category buckets preserving item order.
func ByCategory(items []Item) map[Category][]Item {
	out := make(map[Category][]Item, len(Categories))
	for _, it := range items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}
