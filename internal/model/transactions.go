package model

import (
	"maps"
	"slices"
	"strings"
)

// Transactions is an ordered collection of records sharing one QIF type
// (e.g. "Bank"), taken from the file header.
type Transactions struct {
	typ   string
	items []*Transaction
}

// NewTransactions creates an empty collection of the given type.
func NewTransactions(typ string) *Transactions {
	return &Transactions{typ: typ}
}

// Type returns the declared record type.
func (ts *Transactions) Type() string {
	return ts.typ
}

// Add appends a record.
func (ts *Transactions) Add(t *Transaction) {
	ts.items = append(ts.items, t)
}

// Get returns the record at index i. It panics if i is out of range.
func (ts *Transactions) Get(i int) *Transaction {
	return ts.items[i]
}

// Len returns the number of records.
func (ts *Transactions) Len() int {
	return len(ts.items)
}

// All returns the records in file order. The slice is a copy.
func (ts *Transactions) All() []*Transaction {
	return slices.Clone(ts.items)
}

// Codes returns every field code used by any record, sorted.
func (ts *Transactions) Codes() []string {
	set := make(map[string]struct{})
	for _, t := range ts.items {
		for code := range t.values {
			set[code] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func (ts *Transactions) String() string {
	parts := make([]string, len(ts.items))
	for i, t := range ts.items {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
