package slots

import (
	"iter"
	"time"
)

// Candidates produces the sequence of provisional windows for one working
// day: the first starts at day.Start, each next one stride later, every one
// exactly duration long. Generation stops before any candidate whose end
// would pass day.End; the partial tail is discarded, never truncated.
//
// Duration and stride are independent settings even though the defaults
// coincide. The sequence is lazy and restartable, and depends on nothing but
// its inputs.
func Candidates(day WorkingDay, duration, stride time.Duration) iter.Seq[CandidateSlot] {
	return func(yield func(CandidateSlot) bool) {
		for cursor := day.Start; ; cursor = cursor.Add(stride) {
			end := cursor.Add(duration)
			if end.After(day.End) {
				return
			}
			if !yield(CandidateSlot{Start: cursor, End: end}) {
				return
			}
		}
	}
}
