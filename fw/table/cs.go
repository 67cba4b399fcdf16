package table

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"
)

// ContentStore is a bounded LRU cache of payloads by content name.
// Warning: not safe for concurrent use.
type ContentStore struct {
	capacity int
	lru      *simplelru.LRU

	// OnEvict is called with the name of every entry evicted to make room.
	OnEvict func(name string)
}

// NewContentStore creates an empty content store holding at most capacity entries.
func NewContentStore(capacity int) (*ContentStore, error) {
	cs := &ContentStore{capacity: capacity}
	lru, err := simplelru.NewLRU(capacity, cs.evicted)
	if err != nil {
		return nil, fmt.Errorf("content store capacity %d: %w", capacity, err)
	}
	cs.lru = lru
	return cs, nil
}

func (cs *ContentStore) evicted(key interface{}, _ interface{}) {
	if cs.OnEvict != nil {
		cs.OnEvict(key.(string))
	}
}

// Lookup returns the payload cached under name and marks it most recently used.
// A miss has no side effect.
func (cs *ContentStore) Lookup(name string) ([]byte, bool) {
	v, ok := cs.lru.Get(name)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Contains reports whether name is cached without touching recency.
func (cs *ContentStore) Contains(name string) bool {
	return cs.lru.Contains(name)
}

// Insert caches payload under name as the most recently used entry.
// Refreshing an existing name never evicts. Inserting a new name into a full
// store evicts the least recently used entry.
func (cs *ContentStore) Insert(name string, payload []byte) {
	cs.lru.Add(name, payload)
}

// Len returns the number of cached entries.
func (cs *ContentStore) Len() int {
	return cs.lru.Len()
}

// Capacity returns the maximum number of entries.
func (cs *ContentStore) Capacity() int {
	return cs.capacity
}

// Names returns the cached names from least to most recently used.
func (cs *ContentStore) Names() []string {
	keys := cs.lru.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	return names
}
