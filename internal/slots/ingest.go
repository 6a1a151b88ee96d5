package slots

import (
	"sort"

	"estimate-booking-backend/internal/calendar"
)

// Normalize converts raw calendar events into the sorted busy-interval
// snapshot the feasibility filter works on. Events without both a start and
// an end datetime (all-day or undated entries) are dropped: they cannot be
// charted to a duration. The sort is stable so coinciding bookings keep
// their upstream order, though correctness never depends on that.
func Normalize(events []calendar.Event) []BusyInterval {
	busy := make([]BusyInterval, 0, len(events))
	for _, event := range events {
		start, ok := event.Start.Resolve()
		if !ok {
			continue
		}
		end, ok := event.End.Resolve()
		if !ok {
			continue
		}
		if !start.Before(end) {
			continue
		}
		busy = append(busy, BusyInterval{
			Start:    start,
			End:      end,
			Location: event.Location,
		})
	}

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})
	return busy
}
