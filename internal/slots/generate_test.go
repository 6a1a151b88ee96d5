package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(t *testing.T, startHour, endHour int) WorkingDay {
	t.Helper()
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	day, err := NewWorkingDay(date, startHour, endHour, time.UTC)
	require.NoError(t, err)
	return day
}

func collect(day WorkingDay, duration, stride time.Duration) []CandidateSlot {
	var out []CandidateSlot
	for c := range Candidates(day, duration, stride) {
		out = append(out, c)
	}
	return out
}

func TestCandidates_FixedDurationAndStride(t *testing.T) {
	day := testDay(t, 8, 18)
	candidates := collect(day, 30*time.Minute, 30*time.Minute)

	// 08:00 through 17:30, inclusive.
	assert.Len(t, candidates, 20)
	assert.Equal(t, day.Start, candidates[0].Start)

	for i, c := range candidates {
		assert.Equal(t, 30*time.Minute, c.End.Sub(c.Start), "candidate %d has wrong duration", i)
		if i > 0 {
			assert.Equal(t, 30*time.Minute, c.Start.Sub(candidates[i-1].Start), "candidate %d has wrong stride", i)
		}
	}

	last := candidates[len(candidates)-1]
	assert.False(t, last.End.After(day.End), "last candidate must end within the working day")
}

func TestCandidates_DiscardsPartialTail(t *testing.T) {
	// A 45-minute duration on a 30-minute grid: the last candidate that fits
	// ends at 17:45; nothing shorter is ever emitted.
	day := testDay(t, 8, 18)
	candidates := collect(day, 45*time.Minute, 30*time.Minute)

	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Equal(t, 45*time.Minute, c.End.Sub(c.Start))
	}
	last := candidates[len(candidates)-1]
	assert.Equal(t, day.End.Add(-15*time.Minute), last.End)
}

func TestCandidates_Restartable(t *testing.T) {
	day := testDay(t, 8, 18)
	seq := Candidates(day, 30*time.Minute, 30*time.Minute)

	var first, second []CandidateSlot
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	assert.Equal(t, first, second)
}

func TestCandidates_EarlyBreak(t *testing.T) {
	day := testDay(t, 8, 18)
	var count int
	for range Candidates(day, 30*time.Minute, 30*time.Minute) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestNewWorkingDay_RejectsInvertedHours(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	_, err := NewWorkingDay(date, 18, 8, time.UTC)
	assert.Error(t, err)
}
