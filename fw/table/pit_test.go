package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []PitEntry) []string {
	ret := make([]string, len(entries))
	for i, e := range entries {
		ret[i] = e.Name
	}
	return ret
}

func TestPitDispatchIsPermutation(t *testing.T) {
	pit := NewPit(false)
	_, ok := pit.DispatchNext()
	assert.False(t, ok)
	assert.False(t, pit.HasUndispatched())

	want := []string{"/n0", "/n1", "/n2", "/n3"}
	for _, n := range want {
		pit.RecordNew("/me", n, 10)
	}

	var got []string
	for i := range want {
		require.True(t, pit.HasUndispatched(), "call %d", i)
		e, ok := pit.DispatchNext()
		require.True(t, ok)
		got = append(got, e.Name)
		assert.Equal(t, i+1, pit.Cursor())
	}
	assert.Equal(t, want, got)
	assert.False(t, pit.HasUndispatched())
	_, ok = pit.DispatchNext()
	assert.False(t, ok)

	// dispatching removes nothing
	assert.Equal(t, 4, pit.Len())
	assert.Equal(t, want, names(pit.Entries()))
}

func TestPitSatisfyOnlyDispatched(t *testing.T) {
	pit := NewPit(false)
	pit.RecordNew("/a", "/c", 10)
	pit.RecordNew("/a", "/c", 10)
	pit.RecordNew("/a", "/d", 10)

	// nothing dispatched yet
	assert.False(t, pit.Satisfy("/a", "/c"))
	assert.Equal(t, 3, pit.Len())
	assert.Equal(t, 0, pit.Cursor())

	pit.DispatchNext()
	assert.True(t, pit.Satisfy("/a", "/c"))
	assert.Equal(t, 2, pit.Len())
	assert.Equal(t, 0, pit.Cursor())

	// the second /c entry is still undispatched
	assert.False(t, pit.Satisfy("/a", "/c"))
	assert.Equal(t, 2, pit.Len())

	e, _ := pit.DispatchNext()
	assert.Equal(t, "/c", e.Name)
	assert.False(t, pit.Satisfy("/b", "/c"))
	assert.True(t, pit.Satisfy("/a", "/c"))
	assert.Equal(t, []string{"/d"}, names(pit.Entries()))
	assert.True(t, pit.HasUndispatched())
}

func TestPitSatisfyRemovesAtMostOne(t *testing.T) {
	pit := NewPit(false)
	pit.RecordNew("/a", "/c", 10)
	pit.RecordNew("/a", "/c", 10)
	pit.DispatchNext()
	pit.DispatchNext()
	assert.Equal(t, 2, pit.Cursor())

	assert.True(t, pit.Satisfy("/a", "/c"))
	assert.Equal(t, 1, pit.Len())
	assert.Equal(t, 1, pit.Cursor())
}

func TestPitExpiryMonotonicity(t *testing.T) {
	const lifetime = 4
	pit := NewPit(false)
	pit.RecordNew("/a", "/c", lifetime)

	for i := 1; i < lifetime; i++ {
		assert.Equal(t, 0, pit.TickAndExpire(), "tick %d", i)
		assert.Equal(t, 1, pit.Len())
	}
	assert.Equal(t, 1, pit.TickAndExpire())
	assert.Equal(t, 0, pit.Len())
	assert.Equal(t, 0, pit.TickAndExpire())
}

func TestPitExpiryCountsBothZones(t *testing.T) {
	pit := NewPit(false)
	pit.RecordNew("/a", "/x", 1)
	pit.RecordNew("/a", "/y", 1)
	pit.RecordNew("/a", "/z", 2)
	pit.DispatchNext()

	assert.Equal(t, 2, pit.TickAndExpire())
	assert.Equal(t, []PitEntry{{"/a", "/z", 1}}, pit.Entries())
}

// Mixed satisfy/expire sequence with the cursor following the entries.
func TestPitTrackingCursor(t *testing.T) {
	pit := NewPit(false)
	pit.RecordNew("/a", "/e1", 1)
	pit.RecordNew("/a", "/e2", 5)
	pit.RecordNew("/a", "/e3", 5)
	pit.RecordNew("/a", "/e4", 5)
	pit.DispatchNext()
	pit.DispatchNext()
	assert.Equal(t, 2, pit.Cursor())

	assert.Equal(t, 1, pit.TickAndExpire())
	assert.Equal(t, []string{"/e2", "/e3", "/e4"}, names(pit.Entries()))
	assert.Equal(t, 1, pit.Cursor())

	e, ok := pit.DispatchNext()
	require.True(t, ok)
	assert.Equal(t, "/e3", e.Name)

	assert.True(t, pit.Satisfy("/a", "/e2"))
	assert.Equal(t, []string{"/e3", "/e4"}, names(pit.Entries()))
	assert.Equal(t, 1, pit.Cursor())

	e, _ = pit.DispatchNext()
	assert.Equal(t, "/e4", e.Name)
	assert.False(t, pit.HasUndispatched())
}

// Same sequence in legacy mode: expiry below the cursor leaves the index alone,
// so /e3 falls behind the cursor without ever being dispatched.
func TestPitLegacyCursor(t *testing.T) {
	pit := NewPit(true)
	pit.RecordNew("/a", "/e1", 1)
	pit.RecordNew("/a", "/e2", 5)
	pit.RecordNew("/a", "/e3", 5)
	pit.RecordNew("/a", "/e4", 5)
	pit.DispatchNext()
	pit.DispatchNext()

	assert.Equal(t, 1, pit.TickAndExpire())
	assert.Equal(t, []string{"/e2", "/e3", "/e4"}, names(pit.Entries()))
	assert.Equal(t, 2, pit.Cursor())

	// /e3 is skipped but can now be satisfied
	e, ok := pit.DispatchNext()
	require.True(t, ok)
	assert.Equal(t, "/e4", e.Name)
	assert.True(t, pit.Satisfy("/a", "/e3"))
	assert.Equal(t, 2, pit.Cursor())
	assert.False(t, pit.HasUndispatched())
}

func TestPitLegacyCursorPastEnd(t *testing.T) {
	pit := NewPit(true)
	pit.RecordNew("/a", "/e1", 1)
	pit.RecordNew("/a", "/e2", 1)
	pit.RecordNew("/a", "/e3", 5)
	pit.DispatchNext()
	pit.DispatchNext()

	assert.Equal(t, 2, pit.TickAndExpire())
	assert.Equal(t, []string{"/e3"}, names(pit.Entries()))
	assert.Equal(t, 2, pit.Cursor())
	assert.False(t, pit.HasUndispatched())

	// the first new entry lands behind the cursor
	pit.RecordNew("/a", "/e4", 5)
	assert.Equal(t, 2, pit.Cursor())
	assert.False(t, pit.HasUndispatched())

	pit.RecordNew("/a", "/e5", 5)
	assert.True(t, pit.HasUndispatched())
	e, _ := pit.DispatchNext()
	assert.Equal(t, "/e5", e.Name)

	// satisfy keeps the gap
	assert.True(t, pit.Satisfy("/a", "/e3"))
	assert.Equal(t, []string{"/e4", "/e5"}, names(pit.Entries()))
	assert.Equal(t, 2, pit.Cursor())
}
