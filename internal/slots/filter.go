package slots

import (
	"sort"
	"time"
)

// overlapsBuffered reports whether the candidate collides with any busy
// interval extended by the trailing buffer. The buffer is asymmetric: it is
// appended only after a booking, covering cleanup and travel prep following
// a job, never blocking time before one.
func overlapsBuffered(c CandidateSlot, busy []BusyInterval, buffer time.Duration) bool {
	for _, b := range busy {
		bufferedEnd := b.End.Add(buffer)
		if c.Start.Before(bufferedEnd) && c.End.After(b.Start) {
			return true
		}
	}
	return false
}

// nearestPrior returns the busy interval with the latest end at or before
// the given instant. The scan runs back to front; bookings never overlap, so
// ends ascend with starts and the first hit from the back is the latest.
func nearestPrior(busy []BusyInterval, at time.Time) (BusyInterval, bool) {
	for i := len(busy) - 1; i >= 0; i-- {
		if !busy[i].End.After(at) {
			return busy[i], true
		}
	}
	return BusyInterval{}, false
}

// nearestFollowing returns the busy interval with the earliest start at or
// after the given instant, found by binary search over the start-sorted list.
func nearestFollowing(busy []BusyInterval, at time.Time) (BusyInterval, bool) {
	i := sort.Search(len(busy), func(i int) bool {
		return !busy[i].Start.Before(at)
	})
	if i == len(busy) {
		return BusyInterval{}, false
	}
	return busy[i], true
}
