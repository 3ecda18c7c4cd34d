package docstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests in place of Firestore.
// MaxIndexedFilters mimics the missing-composite-index failure mode: when a
// query carries an order clause and more field filters than the store has
// "indexes" for, Documents returns ErrUnsupportedQuery. Zero means every
// combination is served.
type MemoryStore struct {
	mu                sync.RWMutex
	collections       map[string]*memoryCollection
	MaxIndexedFilters int
	FailNext          error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		col = &memoryCollection{store: s, docs: make(map[string]map[string]interface{})}
		s.collections[name] = col
	}
	return col
}

type memoryCollection struct {
	store *MemoryStore
	mu    sync.RWMutex
	docs  map[string]map[string]interface{}
}

func (c *memoryCollection) NewID() string {
	return uuid.New().String()
}

func (c *memoryCollection) Get(ctx context.Context, id string) (Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &memoryDocument{id: id, data: copyMap(data)}, nil
}

func (c *memoryCollection) Set(ctx context.Context, id string, data map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = copyMap(data)
	return nil
}

func (c *memoryCollection) Update(ctx context.Context, id string, updates []Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	for _, u := range updates {
		if inc, ok := u.Value.(incrementValue); ok {
			data[u.Path] = toInt64(data[u.Path]) + inc.Delta
			continue
		}
		data[u.Path] = u.Value
	}
	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, id)
	return nil
}

func (c *memoryCollection) Query() Query {
	return &memoryQuery{col: c}
}

type memoryFilter struct {
	path  string
	op    string
	value interface{}
}

type memoryQuery struct {
	col       *memoryCollection
	filters   []memoryFilter
	orderPath string
	orderDir  Direction
	cursorID  string
	limit     int
}

func (q *memoryQuery) clone() *memoryQuery {
	cp := *q
	cp.filters = append([]memoryFilter(nil), q.filters...)
	return &cp
}

func (q *memoryQuery) Where(path, op string, value interface{}) Query {
	cp := q.clone()
	cp.filters = append(cp.filters, memoryFilter{path: path, op: op, value: value})
	return cp
}

func (q *memoryQuery) OrderBy(path string, dir Direction) Query {
	cp := q.clone()
	cp.orderPath = path
	cp.orderDir = dir
	return cp
}

func (q *memoryQuery) StartAfter(docID string) Query {
	cp := q.clone()
	cp.cursorID = docID
	return cp
}

func (q *memoryQuery) Limit(n int) Query {
	cp := q.clone()
	cp.limit = n
	return cp
}

func (q *memoryQuery) Documents(ctx context.Context) ([]Document, error) {
	if err := q.col.store.FailNext; err != nil {
		q.col.store.FailNext = nil
		return nil, err
	}
	max := q.col.store.MaxIndexedFilters
	if max > 0 && q.orderPath != "" && len(q.filters) > max {
		return nil, fmt.Errorf("%w: %d filters ordered by %s", ErrUnsupportedQuery, len(q.filters), q.orderPath)
	}

	q.col.mu.RLock()
	var docs []*memoryDocument
	for id, data := range q.col.docs {
		if q.matches(data) {
			docs = append(docs, &memoryDocument{id: id, data: copyMap(data)})
		}
	}
	q.col.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		if q.orderPath != "" {
			cmp := compareValues(fieldAt(docs[i].data, q.orderPath), fieldAt(docs[j].data, q.orderPath))
			if cmp != 0 {
				if q.orderDir == Descending {
					return cmp > 0
				}
				return cmp < 0
			}
		}
		// Tie-break on document id, as Firestore does with __name__.
		return docs[i].id < docs[j].id
	})

	start := 0
	if q.cursorID != "" {
		start = len(docs)
		for i, doc := range docs {
			if doc.id == q.cursorID {
				start = i + 1
				break
			}
		}
	}

	var out []Document
	for _, doc := range docs[minInt(start, len(docs)):] {
		out = append(out, doc)
		if q.limit > 0 && len(out) == q.limit {
			break
		}
	}
	return out, nil
}

func (q *memoryQuery) matches(data map[string]interface{}) bool {
	for _, f := range q.filters {
		fieldValue := fieldAt(data, f.path)
		switch f.op {
		case "==":
			if !equalValues(fieldValue, f.value) {
				return false
			}
		case "in":
			if !containsValue(f.value, fieldValue) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

type memoryDocument struct {
	id   string
	data map[string]interface{}
}

func (d *memoryDocument) ID() string {
	return d.id
}

func (d *memoryDocument) Data() map[string]interface{} {
	return d.data
}

// fieldAt resolves a dotted path against nested maps.
func fieldAt(data map[string]interface{}, path string) interface{} {
	parts := strings.Split(path, ".")
	var current interface{} = data
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

func containsValue(set, value interface{}) bool {
	switch s := set.(type) {
	case []interface{}:
		for _, item := range s {
			if equalValues(item, value) {
				return true
			}
		}
	case []string:
		for _, item := range s {
			if equalValues(item, value) {
				return true
			}
		}
	case []int64:
		for _, item := range s {
			if equalValues(item, value) {
				return true
			}
		}
	}
	return false
}

func equalValues(a, b interface{}) bool {
	return compareValues(a, b) == 0
}

func compareValues(a, b interface{}) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	if af, ok := toFloat64(a); ok {
		if bf, ok := toFloat64(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	return strings.Compare(as, bs)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func copyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch typed := v.(type) {
		case map[string]interface{}:
			dst[k] = copyMap(typed)
		case []string:
			dst[k] = append([]string(nil), typed...)
		case []interface{}:
			dst[k] = append([]interface{}(nil), typed...)
		default:
			dst[k] = v
		}
	}
	return dst
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
