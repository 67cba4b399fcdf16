package table

import (
	"testing"

	"github.com/named-data/ndnsim/fw/defn"
	"github.com/stretchr/testify/assert"
)

func TestFibLongestPrefixMatch(t *testing.T) {
	fib := &Fib{}
	assert.True(t, fib.Insert("/edu.umich/ECE", 1))
	assert.True(t, fib.Insert("/edu.uchicago/CS", 2))

	nh, ok := fib.LongestPrefixMatch("/edu.umich/ECE/1")
	assert.True(t, ok)
	assert.Equal(t, defn.NodeID(1), nh)

	nh, ok = fib.LongestPrefixMatch("/edu.uchicago/CS/2")
	assert.True(t, ok)
	assert.Equal(t, defn.NodeID(2), nh)
}

func TestFibTieBreaksOnInsertionOrder(t *testing.T) {
	fib := &Fib{}
	fib.Insert("/x/left", 7)
	fib.Insert("/x/right", 3)

	// both share "/x/"
	nh, ok := fib.LongestPrefixMatch("/x/middle")
	assert.True(t, ok)
	assert.Equal(t, defn.NodeID(7), nh)
}

func TestFibCharacterLevelMatch(t *testing.T) {
	fib := &Fib{}
	fib.Insert("/edu.umich", 1)
	fib.Insert("/edu.umichigan-state", 2)

	// the longer key splits the "edu.umich" segment and still wins
	nh, _ := fib.LongestPrefixMatch("/edu.umichi/x")
	assert.Equal(t, defn.NodeID(2), nh)
}

func TestFibNoRoute(t *testing.T) {
	fib := &Fib{}
	_, ok := fib.LongestPrefixMatch("/anything")
	assert.False(t, ok)

	fib.Insert("abc", 1)
	_, ok = fib.LongestPrefixMatch("/abc")
	assert.False(t, ok)
}

func TestFibInsertUpdatesInPlace(t *testing.T) {
	fib := &Fib{}
	fib.Insert("/a", 1)
	fib.Insert("/b", 2)
	assert.False(t, fib.Insert("/a", 5))
	assert.Equal(t, 2, fib.Len())
	assert.Equal(t, []FibEntry{{"/a", 5}, {"/b", 2}}, fib.Entries())

	nh, ok := fib.Find("/b")
	assert.True(t, ok)
	assert.Equal(t, defn.NodeID(2), nh)
	_, ok = fib.Find("/c")
	assert.False(t, ok)
}
