package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estimate-booking-backend/internal/calendar"
	"estimate-booking-backend/internal/model"
	"estimate-booking-backend/internal/notification"
	"estimate-booking-backend/internal/store"
)

// ErrMissingFields is returned when a booking request lacks required fields.
var ErrMissingFields = errors.New("missing required fields")

// Request carries everything needed to book one estimate appointment.
type Request struct {
	Name           string
	Phone          string
	Email          string
	Address        string
	JobType        string
	FloorCondition string
	HearAboutUs    string
	Notes          string
	SlotStart      time.Time
	SlotEnd        time.Time
}

// Validate checks that all required fields are present. Validation runs
// before any external call is made.
func (r Request) Validate() error {
	if r.Name == "" || r.Phone == "" || r.Address == "" || r.JobType == "" ||
		r.SlotStart.IsZero() || r.SlotEnd.IsZero() {
		return ErrMissingFields
	}
	return nil
}

// Service turns a validated booking request into exactly one calendar event.
// There is no retry and no deduplication: submitting the same request twice
// creates two events, and handling that is the caller's responsibility.
type Service struct {
	cal   calendar.Client
	store store.Store
	pool  *notification.WorkerPool
}

// NewService creates a booking service. store and pool may be nil, in which
// case auditing and staff notification are skipped.
func NewService(cal calendar.Client, st store.Store, pool *notification.WorkerPool) *Service {
	return &Service{cal: cal, store: st, pool: pool}
}

// Book validates the request and creates the calendar event. On success it
// appends an audit record and dispatches a staff notification; both are
// best-effort and never fail the booking.
func (s *Service) Book(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.cal.CreateEvent(ctx, buildEvent(req)); err != nil {
		return fmt.Errorf("failed to create booking event: %w", err)
	}

	if s.store != nil {
		record := model.BookingRecord{
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			Address:   req.Address,
			JobType:   req.JobType,
			SlotStart: req.SlotStart,
			SlotEnd:   req.SlotEnd,
		}
		if err := s.store.RecordBooking(ctx, record); err != nil {
			log.Printf("Error recording booking for %q: %v", req.Name, err)
		}
	}

	if s.pool != nil {
		s.pool.Dispatch(notification.BookingAlert{
			Name:      req.Name,
			JobType:   req.JobType,
			Address:   req.Address,
			SlotStart: req.SlotStart,
		})
	}

	return nil
}

// buildEvent assembles the calendar event for a booking: a summary naming
// the customer, a line-per-field description with optional lines dropped,
// the customer as attendee when an email was given, and email and popup
// reminders ahead of the visit.
func buildEvent(req Request) calendar.Event {
	lines := []string{fmt.Sprintf("Service: %s", req.JobType)}
	if req.FloorCondition != "" {
		lines = append(lines, fmt.Sprintf("Floor Condition: %s", req.FloorCondition))
	}
	lines = append(lines, fmt.Sprintf("Phone: %s", req.Phone))
	if req.Email != "" {
		lines = append(lines, fmt.Sprintf("Email: %s", req.Email))
	}
	if req.HearAboutUs != "" {
		lines = append(lines, fmt.Sprintf("Heard About Us: %s", req.HearAboutUs))
	}
	if req.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", req.Notes))
	}

	event := calendar.Event{
		Summary:     fmt.Sprintf("Estimate – %s", req.Name),
		Description: strings.Join(lines, "\n"),
		Location:    req.Address,
		Start:       calendar.EventTime{DateTime: req.SlotStart.Format(time.RFC3339)},
		End:         calendar.EventTime{DateTime: req.SlotEnd.Format(time.RFC3339)},
		Reminders: &calendar.Reminders{
			UseDefault: false,
			Overrides: []calendar.ReminderOverride{
				{Method: "email", Minutes: 60},
				{Method: "popup", Minutes: 30},
			},
		},
	}
	if req.Email != "" {
		event.Attendees = []calendar.Attendee{{Email: req.Email}}
	}
	return event
}
