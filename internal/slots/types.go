package slots

import (
	"fmt"
	"time"
)

// WorkingDay is the bounded window within one calendar day in which slots may
// be offered. Start is always strictly before End.
type WorkingDay struct {
	Start time.Time
	End   time.Time
}

// NewWorkingDay applies the configured work hours to a calendar date in the
// given location.
func NewWorkingDay(date time.Time, startHour, endHour int, loc *time.Location) (WorkingDay, error) {
	if startHour >= endHour {
		return WorkingDay{}, fmt.Errorf("invalid working hours: start %d is not before end %d", startHour, endHour)
	}
	year, month, day := date.In(loc).Date()
	return WorkingDay{
		Start: time.Date(year, month, day, startHour, 0, 0, 0, loc),
		End:   time.Date(year, month, day, endHour, 0, 0, 0, loc),
	}, nil
}

// BusyInterval is one confirmed booking's time span, with the service address
// it takes place at when the calendar event carried one. The per-day list is
// a read-only snapshot sorted ascending by Start.
type BusyInterval struct {
	Start    time.Time
	End      time.Time
	Location string
}

// CandidateSlot is a provisional fixed-duration window considered for
// availability before the feasibility checks run.
type CandidateSlot struct {
	Start time.Time
	End   time.Time
}

// AvailableSlot is an accepted bookable window. TravelNote is set when the
// slot follows a located booking and the drive from it was checked.
type AvailableSlot struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	TravelNote string    `json:"travelNote,omitempty"`
}
