package shop

import (
	"sync"

	"github.com/google/uuid"
)

// record is satisfied by entity types that can adopt a store-assigned id.
type record[T any] interface {
	withID(id string) T
}

// table is one id-keyed entity map. Iteration follows insertion order so
// listings and pagination stay stable across calls. Every method holds the
// table lock for its full read-modify-write, which keeps each store
// operation a single critical section under a preemptive runtime.
type table[T record[T]] struct {
	mu  sync.RWMutex
	m   map[string]T
	ids []string
}

func newTable[T record[T]]() *table[T] {
	return &table[T]{m: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.m[id]
	return v, ok
}

// list returns records in insertion order; a nil keep returns everything.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		if v := t.m[id]; keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.put(v)
}

// seed stores v under a fixed id, for demo fixtures.
func (t *table[T]) seed(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.m[id] = v.withID(id)
	t.ids = append(t.ids, id)
}

func (t *table[T]) update(id string, apply func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.m[id]
	if !ok {
		var zero T
		return zero, false
	}
	v = apply(v)
	t.m[id] = v
	return v, true
}

// upsert merges into the first record matching match, or inserts fresh when
// none does. Lookup and write happen under one lock so two concurrent calls
// cannot both miss and double-insert.
func (t *table[T]) upsert(match func(T) bool, merge func(T) T, fresh T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.ids {
		if match(t.m[id]) {
			v := merge(t.m[id])
			t.m[id] = v
			return v
		}
	}
	return t.put(fresh)
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drop(id)
}

// removeAll deletes every record matching match; deleting nothing is fine.
func (t *table[T]) removeAll(match func(T) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range append([]string(nil), t.ids...) {
		if match(t.m[id]) {
			t.drop(id)
		}
	}
}

// put assigns a fresh id and stores v. Callers hold t.mu.
func (t *table[T]) put(v T) T {
	id := uuid.NewString()
	v = v.withID(id)
	t.m[id] = v
	t.ids = append(t.ids, id)
	return v
}

// drop deletes id from the map and the order index. Callers hold t.mu.
func (t *table[T]) drop(id string) bool {
	if _, ok := t.m[id]; !ok {
		return false
	}
	delete(t.m, id)
	for i, other := range t.ids {
		if other == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return true
}
