package store

import (
	"errors"
	"slices"

	"github.com/yigit/registrar/internal/app/models"
)

// Table errors
var (
	ErrTxNotWritable = errors.New("store: write in read-only transaction")
	ErrRowNotFound   = errors.New("store: row not found")
	ErrDuplicateID   = errors.New("store: duplicate row id")
)

// Table is an insertion-ordered collection seen through a transaction.
// The first write copies the rows, so the committed data never changes
// until the transaction commits.
type Table[T models.Entity] struct {
	name     Collection
	rows     []T
	owned    bool
	writable bool
	dirty    bool
}

func newTable[T models.Entity](name Collection, rows []T, writable bool) *Table[T] {
	return &Table[T]{name: name, rows: rows, writable: writable}
}

// Name returns the collection this table holds
func (t *Table[T]) Name() Collection { return t.name }

// Len returns the number of rows
func (t *Table[T]) Len() int { return len(t.rows) }

// All returns a copy of the rows in insertion order
func (t *Table[T]) All() []T {
	return append(make([]T, 0, len(t.rows)), t.rows...)
}

// Find returns the row with the given id
func (t *Table[T]) Find(id string) (T, bool) {
	if i := t.index(id); i >= 0 {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

// Filter returns the rows matching keep, in insertion order
func (t *Table[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// Any reports whether some row matches
func (t *Table[T]) Any(match func(T) bool) bool {
	return slices.ContainsFunc(t.rows, match)
}

// Insert appends a row. Ids must be unique within the table.
func (t *Table[T]) Insert(row T) error {
	if err := t.mutate(); err != nil {
		return err
	}
	if t.index(row.GetID()) >= 0 {
		return ErrDuplicateID
	}
	t.rows = append(t.rows, row)
	return nil
}

// Replace swaps the row sharing row's id, keeping its position
func (t *Table[T]) Replace(row T) error {
	i := t.index(row.GetID())
	if i < 0 {
		return ErrRowNotFound
	}
	if err := t.mutate(); err != nil {
		return err
	}
	t.rows[i] = row
	return nil
}

// Remove deletes the row with the given id
func (t *Table[T]) Remove(id string) error {
	i := t.index(id)
	if i < 0 {
		return ErrRowNotFound
	}
	if err := t.mutate(); err != nil {
		return err
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

func (t *Table[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(row T) bool { return row.GetID() == id })
}

func (t *Table[T]) mutate() error {
	if !t.writable {
		return ErrTxNotWritable
	}
	if !t.owned {
		t.rows = slices.Clone(t.rows)
		t.owned = true
	}
	t.dirty = true
	return nil
}
