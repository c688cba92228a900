package checklist

import "testing"

func TestDefaults(t *testing.T) {
	items := Defaults()
	if len(items) != 10 {
		t.Fatalf("got %d default items, want 10", len(items))
	}
	seen := map[string]bool{}
	for _, it := range items {
		if !it.Category.Valid() {
			t.Errorf("item %s has invalid category %q", it.ID, it.Category)
		}
		if it.Checked {
			t.Errorf("item %s starts checked", it.ID)
		}
		if seen[it.ID] {
			t.Errorf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	groups := ByCategory(Defaults())
	if len(groups[Start]) != 3 || len(groups[Ongoing]) != 3 || len(groups[End]) != 4 {
		t.Errorf("group sizes = %d/%d/%d, want 3/3/4",
			len(groups[Start]), len(groups[Ongoing]), len(groups[End]))
	}
}

func TestCategoryValid(t *testing.T) {
	if Category("MID").Valid() {
		t.Error("unknown category reported valid")
	}
}
