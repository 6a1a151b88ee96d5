package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimate-booking-backend/internal/calendar"
	"estimate-booking-backend/internal/model"
)

// mockCalendarClient is a mock implementation of the calendar.Client interface.
type mockCalendarClient struct {
	created []calendar.Event
	err     error
}

func (m *mockCalendarClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	return nil, nil
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, event calendar.Event) error {
	m.created = append(m.created, event)
	return m.err
}

// mockStore records booking audit calls; the rest of the Store interface is
// unused here.
type mockStore struct {
	bookings []model.BookingRecord
}

func (m *mockStore) SaveSubscription(ctx context.Context, sub model.PushSubscription) error {
	return nil
}
func (m *mockStore) GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	return model.PushSubscription{}, nil
}
func (m *mockStore) DeleteSubscription(ctx context.Context, endpoint string) error { return nil }
func (m *mockStore) ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error) {
	return nil, nil
}
func (m *mockStore) RecordBooking(ctx context.Context, record model.BookingRecord) error {
	m.bookings = append(m.bookings, record)
	return nil
}
func (m *mockStore) RecordDegradation(ctx context.Context, origin, destination, cause string) {}

func validRequest() Request {
	return Request{
		Name:      "Pat Jones",
		Phone:     "555-0142",
		Email:     "pat@example.com",
		Address:   "12 Oak St",
		JobType:   "Garage Floor",
		Notes:     "Two-car garage",
		SlotStart: time.Date(2026, time.September, 7, 11, 0, 0, 0, time.UTC),
		SlotEnd:   time.Date(2026, time.September, 7, 11, 30, 0, 0, time.UTC),
	}
}

func TestBook_ValidationRejectsMissingFields(t *testing.T) {
	cal := &mockCalendarClient{}
	svc := NewService(cal, nil, nil)

	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Name = "" }},
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"missing address", func(r *Request) { r.Address = "" }},
		{"missing job type", func(r *Request) { r.JobType = "" }},
		{"missing slot start", func(r *Request) { r.SlotStart = time.Time{} }},
		{"missing slot end", func(r *Request) { r.SlotEnd = time.Time{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := svc.Book(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	// Validation happens before any external call.
	assert.Empty(t, cal.created)
}

func TestBook_CreatesExactlyOneEvent(t *testing.T) {
	cal := &mockCalendarClient{}
	st := &mockStore{}
	svc := NewService(cal, st, nil)

	require.NoError(t, svc.Book(context.Background(), validRequest()))
	require.Len(t, cal.created, 1)

	event := cal.created[0]
	assert.Equal(t, "Estimate – Pat Jones", event.Summary)
	assert.Equal(t, "12 Oak St", event.Location)
	assert.Equal(t, "Service: Garage Floor\nPhone: 555-0142\nEmail: pat@example.com\nNotes: Two-car garage", event.Description)
	assert.Equal(t, "2026-09-07T11:00:00Z", event.Start.DateTime)
	assert.Equal(t, "2026-09-07T11:30:00Z", event.End.DateTime)

	require.Len(t, event.Attendees, 1)
	assert.Equal(t, "pat@example.com", event.Attendees[0].Email)

	require.NotNil(t, event.Reminders)
	assert.False(t, event.Reminders.UseDefault)
	assert.Equal(t, []calendar.ReminderOverride{
		{Method: "email", Minutes: 60},
		{Method: "popup", Minutes: 30},
	}, event.Reminders.Overrides)

	// The audit record mirrors the request.
	require.Len(t, st.bookings, 1)
	assert.Equal(t, "Pat Jones", st.bookings[0].Name)
}

func TestBook_OptionalFieldsOmittedFromDescription(t *testing.T) {
	cal := &mockCalendarClient{}
	svc := NewService(cal, nil, nil)

	req := validRequest()
	req.Email = ""
	req.Notes = ""
	require.NoError(t, svc.Book(context.Background(), req))

	require.Len(t, cal.created, 1)
	assert.Equal(t, "Service: Garage Floor\nPhone: 555-0142", cal.created[0].Description)
	assert.Empty(t, cal.created[0].Attendees)
}

func TestBook_CalendarFailurePropagates(t *testing.T) {
	cal := &mockCalendarClient{err: errors.New("upstream down")}
	st := &mockStore{}
	svc := NewService(cal, st, nil)

	err := svc.Book(context.Background(), validRequest())
	assert.Error(t, err)

	// Exactly one attempt, no retry, and nothing audited for a failed write.
	assert.Len(t, cal.created, 1)
	assert.Empty(t, st.bookings)
}
