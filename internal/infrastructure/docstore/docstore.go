// Package docstore is the narrow contract the application holds against the
// hosted document database: named collections of map-shaped documents,
// equality and set-membership filters on top-level or dotted fields, a single
// order clause, a limit, and a start-after-document cursor. Both the
// Firestore client and the in-memory store used by tests implement it, so
// every repository can be exercised without a live project.
package docstore

import (
	"context"
	"errors"
)

// ErrUnsupportedQuery is returned when the store cannot serve a composite
// filter/order combination in one indexed query. Callers are expected to
// degrade to a simpler query rather than fail.
var ErrUnsupportedQuery = errors.New("docstore: unsupported filter/order combination")

// ErrNotFound is returned for reads and updates addressing an absent document.
var ErrNotFound = errors.New("docstore: document not found")

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Document is a stored record: an opaque id plus its raw field map.
type Document interface {
	ID() string
	Data() map[string]interface{}
}

// Update mutates a single field. Value may be produced by Increment.
type Update struct {
	Path  string
	Value interface{}
}

type incrementValue struct {
	Delta int64
}

// Increment returns an Update that atomically adds delta to a numeric field.
func Increment(path string, delta int64) Update {
	return Update{Path: path, Value: incrementValue{Delta: delta}}
}

type Query interface {
	// Where adds a filter. Supported operators are "==" and "in"; for "in"
	// the value must be a slice.
	Where(path, op string, value interface{}) Query
	// OrderBy sets the single order clause. Later calls replace earlier ones.
	OrderBy(path string, dir Direction) Query
	// StartAfter positions the query just after the document with the given
	// id, resolved against the current order clause at execution time.
	StartAfter(docID string) Query
	Limit(n int) Query
	Documents(ctx context.Context) ([]Document, error)
}

type Collection interface {
	NewID() string
	Get(ctx context.Context, id string) (Document, error)
	Set(ctx context.Context, id string, data map[string]interface{}) error
	Update(ctx context.Context, id string, updates []Update) error
	Delete(ctx context.Context, id string) error
	Query() Query
}

type Store interface {
	Collection(name string) Collection
}
