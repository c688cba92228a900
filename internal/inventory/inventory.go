// Package inventory keeps the session list of tangible assets that feeds the
// annual inventory protocol. Like the journal it is in-memory only and starts
// from a small demo seed.
package inventory

import (
	"errors"
	"strings"
	"sync"
)

// Asset is one tangible item with its value in cents.
type Asset struct {
	Name  string
	Value int64
}

var (
	ErrEmptyName    = errors.New("asset name is empty")
	ErrInvalidValue = errors.New("asset value must be positive")
)

// List is a concurrency-safe asset collection.
type List struct {
	mu    sync.Mutex
	items []Asset
}

// NewList returns a list seeded with the demo asset.
func NewList() *List {
	return &List{items: []Asset{{Name: "Notebook", Value: 1500000}}}
}

// Add validates and appends an asset.
func (l *List) Add(a Asset) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrEmptyName
	}
	if a.Value <= 0 {
		return ErrInvalidValue
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, a)
	return nil
}

// Items returns a copy of the current assets.
func (l *List) Items() []Asset {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Asset, len(l.items))
	copy(out, l.items)
	return out
}

// Total sums the asset values in cents.
func (l *List) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum int64
	for _, a := range l.items {
		sum += a.Value
	}
	return sum
}
