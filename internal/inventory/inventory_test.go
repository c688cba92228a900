package inventory

import (
	"errors"
	"testing"
)

func TestNewListSeed(t *testing.T) {
	l := NewList()
	items := l.Items()
	if len(items) != 1 || items[0].Name != "Notebook" || items[0].Value != 1500000 {
		t.Errorf("seed = %+v", items)
	}
}

func TestAdd(t *testing.T) {
	l := NewList()
	if err := l.Add(Asset{Name: "  Projektor ", Value: 800000}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	items := l.Items()
	if len(items) != 2 || items[1].Name != "Projektor" {
		t.Errorf("items = %+v", items)
	}
	if got := l.Total(); got != 2300000 {
		t.Errorf("Total() = %d, want 2300000", got)
	}
}

func TestAddRejects(t *testing.T) {
	l := NewList()
	if err := l.Add(Asset{Name: "   ", Value: 100}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name error = %v", err)
	}
	if err := l.Add(Asset{Name: "Stul", Value: 0}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("zero value error = %v", err)
	}
	if got := len(l.Items()); got != 1 {
		t.Errorf("rejected adds changed the list, len = %d", got)
	}
}

func TestItemsCopy(t *testing.T) {
	l := NewList()
	items := l.Items()
	items[0].Name = "mutated"
	if l.Items()[0].Name != "Notebook" {
		t.Error("Items() exposed internal slice")
	}
}
