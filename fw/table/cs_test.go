package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCS(t *testing.T, capacity int) *ContentStore {
	cs, err := NewContentStore(capacity)
	require.NoError(t, err)
	return cs
}

func TestContentStoreInvalidCapacity(t *testing.T) {
	_, err := NewContentStore(0)
	assert.Error(t, err)
}

func TestContentStoreLookup(t *testing.T) {
	cs := newCS(t, 5)
	_, ok := cs.Lookup("/a")
	assert.False(t, ok)
	assert.Equal(t, 0, cs.Len())

	cs.Insert("/a", []byte("alpha"))
	payload, ok := cs.Lookup("/a")
	assert.True(t, ok)
	assert.Equal(t, []byte("alpha"), payload)
	assert.True(t, cs.Contains("/a"))
	assert.False(t, cs.Contains("/b"))
	assert.Equal(t, 5, cs.Capacity())
}

func TestContentStoreEvictsLeastRecentlyUsed(t *testing.T) {
	cs := newCS(t, 5)
	var evicted []string
	cs.OnEvict = func(name string) { evicted = append(evicted, name) }

	for _, n := range []string{"a", "b", "c", "d", "e"} {
		cs.Insert(n, []byte(n))
	}
	assert.Equal(t, 5, cs.Len())
	assert.Empty(t, evicted)

	// reading a protects it
	_, ok := cs.Lookup("a")
	require.True(t, ok)

	cs.Insert("f", []byte("f"))
	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 5, cs.Len())
	assert.True(t, cs.Contains("a"))
	assert.False(t, cs.Contains("b"))
	assert.Equal(t, []string{"c", "d", "e", "a", "f"}, cs.Names())
}

func TestContentStoreEvictsFirstInserted(t *testing.T) {
	cs := newCS(t, 5)
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		cs.Insert(n, []byte(n))
	}
	assert.False(t, cs.Contains("a"))
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, cs.Names())
}

func TestContentStoreRefreshDoesNotEvict(t *testing.T) {
	cs := newCS(t, 2)
	evictions := 0
	cs.OnEvict = func(string) { evictions++ }

	cs.Insert("a", []byte("1"))
	cs.Insert("b", []byte("2"))
	cs.Insert("a", []byte("3"))
	assert.Equal(t, 0, evictions)
	assert.Equal(t, []string{"b", "a"}, cs.Names())

	payload, _ := cs.Lookup("a")
	assert.Equal(t, []byte("3"), payload)

	// b is now the least recently used
	cs.Insert("c", []byte("4"))
	assert.Equal(t, 1, evictions)
	assert.Equal(t, []string{"a", "c"}, cs.Names())
}

func TestContentStoreMissHasNoSideEffect(t *testing.T) {
	cs := newCS(t, 2)
	cs.Insert("a", nil)
	cs.Insert("b", nil)
	_, ok := cs.Lookup("zzz")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, cs.Names())
}

func TestContentStoreEveryReplacementIsAnEviction(t *testing.T) {
	cs := newCS(t, 5)
	var evicted []string
	cs.OnEvict = func(name string) { evicted = append(evicted, name) }

	for i := range 1000 {
		cs.Insert(fmt.Sprintf("/n/%d", i), []byte{byte(i)})
	}
	assert.Equal(t, 5, cs.Len())
	require.Len(t, evicted, 995)
	assert.Equal(t, "/n/0", evicted[0])
	assert.Equal(t, "/n/994", evicted[994])
	assert.Equal(t, []string{"/n/995", "/n/996", "/n/997", "/n/998", "/n/999"}, cs.Names())
}
