package calendar

import "time"

// EventTime models the start/end field of an upstream event. Timed events
// carry an RFC3339 DateTime; all-day events carry only a Date.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Resolve parses the DateTime field. The second return is false for all-day
// or undated entries, which cannot be charted to a bookable duration.
func (t EventTime) Resolve() (time.Time, bool) {
	if t.DateTime == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, t.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Attendee is an invitee on a calendar event.
type Attendee struct {
	Email string `json:"email"`
}

// ReminderOverride is a single reminder attached to an event.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// Reminders models the reminder settings of an event.
type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// Event is one upstream calendar event.
type Event struct {
	ID          string     `json:"id,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Start       EventTime  `json:"start"`
	End         EventTime  `json:"end"`
	Attendees   []Attendee `json:"attendees,omitempty"`
	Reminders   *Reminders `json:"reminders,omitempty"`
}

// listResponse models the top-level structure of the events list endpoint.
type listResponse struct {
	Items []Event `json:"items"`
}
