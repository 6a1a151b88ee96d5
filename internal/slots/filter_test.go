package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsBuffered(t *testing.T) {
	base := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	busy := []BusyInterval{{Start: base, End: base.Add(30 * time.Minute)}}
	buffer := 15 * time.Minute

	testCases := []struct {
		name     string
		start    time.Duration // offset from base
		expected bool
	}{
		{"well before", -60 * time.Minute, false},
		{"ends exactly at busy start", -30 * time.Minute, false},
		{"overlaps start", -15 * time.Minute, true},
		{"inside booking", 0, true},
		{"inside buffer", 30 * time.Minute, true},
		{"starts exactly at buffered end", 45 * time.Minute, false},
		{"well after", 90 * time.Minute, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := CandidateSlot{Start: base.Add(tc.start), End: base.Add(tc.start + 30*time.Minute)}
			assert.Equal(t, tc.expected, overlapsBuffered(c, busy, buffer))
		})
	}
}

func TestNearestPriorAndFollowing(t *testing.T) {
	base := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	busy := []BusyInterval{
		{Start: base.Add(1 * time.Hour), End: base.Add(2 * time.Hour), Location: "first"},
		{Start: base.Add(4 * time.Hour), End: base.Add(5 * time.Hour), Location: "second"},
	}

	// Between the two bookings: prior is the first, following the second.
	prior, ok := nearestPrior(busy, base.Add(3*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "first", prior.Location)

	following, ok := nearestFollowing(busy, base.Add(3*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "second", following.Location)

	// Before everything: no prior, following is the first.
	_, ok = nearestPrior(busy, base)
	assert.False(t, ok)
	following, ok = nearestFollowing(busy, base)
	require.True(t, ok)
	assert.Equal(t, "first", following.Location)

	// After everything: prior is the second, no following.
	prior, ok = nearestPrior(busy, base.Add(6*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "second", prior.Location)
	_, ok = nearestFollowing(busy, base.Add(6*time.Hour))
	assert.False(t, ok)

	// Boundary instants count as adjacent on both sides.
	prior, ok = nearestPrior(busy, base.Add(2*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "first", prior.Location)
	following, ok = nearestFollowing(busy, base.Add(4*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "second", following.Location)
}

func TestNearestPriorAndFollowing_EmptyList(t *testing.T) {
	at := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)
	_, ok := nearestPrior(nil, at)
	assert.False(t, ok)
	_, ok = nearestFollowing(nil, at)
	assert.False(t, ok)
}
