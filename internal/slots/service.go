package slots

import (
	"context"
	"fmt"
	"sync"
	"time"

	"estimate-booking-backend/config"
	"estimate-booking-backend/internal/calendar"
	"estimate-booking-backend/internal/travel"
)

// CalendarSource is the slice of the calendar client the engine reads from.
type CalendarSource interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error)
}

// TravelEstimator answers drive-time lookups. Implementations never fail:
// a lookup that cannot be answered comes back as a degraded default.
type TravelEstimator interface {
	EstimateDriveMinutes(ctx context.Context, origin, destination string) travel.Estimate
}

// Service computes bookable windows for a day. It holds no state between
// requests: every computation reads a fresh busy-interval snapshot from the
// calendar and evaluates candidates against it.
type Service struct {
	cfg    *config.SchedulingConfig
	cal    CalendarSource
	travel TravelEstimator
	loc    *time.Location
}

// NewService creates the availability engine.
func NewService(cfg *config.SchedulingConfig, cal CalendarSource, estimator TravelEstimator) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}
	return &Service{cfg: cfg, cal: cal, travel: estimator, loc: loc}, nil
}

// Location returns the business timezone the engine operates in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// BookableDays lists the calendar dates, starting tomorrow, on which slots
// may be requested: the configured lookahead window minus Sundays.
func (s *Service) BookableDays(now time.Time) []time.Time {
	today := now.In(s.loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)

	days := make([]time.Time, 0, s.cfg.DaysAhead)
	for i := 1; i <= s.cfg.DaysAhead; i++ {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// AvailableSlots computes the ordered list of bookable windows on the given
// date. address is the candidate service address and may be empty, in which
// case travel feasibility is not checked. A calendar read failure fails the
// whole computation; there is no meaningful "assume no bookings" fallback.
func (s *Service) AvailableSlots(ctx context.Context, date time.Time, address string) ([]AvailableSlot, error) {
	day, err := NewWorkingDay(date, s.cfg.WorkStartHour, s.cfg.WorkEndHour, s.loc)
	if err != nil {
		return nil, err
	}

	events, err := s.cal.ListEvents(ctx, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	busy := Normalize(events)

	duration := time.Duration(s.cfg.EstimateDurationMinutes) * time.Minute
	stride := time.Duration(s.cfg.StrideMinutes) * time.Minute

	var candidates []CandidateSlot
	for c := range Candidates(day, duration, stride) {
		candidates = append(candidates, c)
	}

	// Each candidate's evaluation only reads the shared snapshot, so they
	// run concurrently under a cap; results are collected by index to keep
	// the ascending output order.
	results := make([]*AvailableSlot, len(candidates))
	sem := make(chan struct{}, s.cfg.MaxConcurrentChecks)
	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c CandidateSlot) {
			defer wg.Done()
			defer func() { <-sem }()
			if accepted, ok := s.evaluate(ctx, c, busy, address); ok {
				results[i] = &accepted
			}
		}(i, c)
	}
	wg.Wait()

	accepted := make([]AvailableSlot, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			accepted = append(accepted, *r)
		}
	}
	return accepted, nil
}

// evaluate runs the feasibility checks for one candidate in order, stopping
// at the first rejection.
func (s *Service) evaluate(ctx context.Context, c CandidateSlot, busy []BusyInterval, address string) (AvailableSlot, bool) {
	buffer := time.Duration(s.cfg.BufferMinutes) * time.Minute
	if overlapsBuffered(c, busy, buffer) {
		return AvailableSlot{}, false
	}

	var travelNote string

	// Can we get there from the previous job in time?
	if prior, ok := nearestPrior(busy, c.Start); ok && prior.Location != "" && address != "" {
		est := s.travel.EstimateDriveMinutes(ctx, prior.Location, address)
		requiredStart := prior.End.Add(time.Duration(est.Minutes) * time.Minute)
		if c.Start.Before(requiredStart) {
			return AvailableSlot{}, false
		}
		travelNote = fmt.Sprintf("~%d min drive from prior appointment", est.Minutes)
	}

	// Can we leave in time to make the next job? No note for this direction:
	// only the inbound drive is surfaced to the customer.
	if following, ok := nearestFollowing(busy, c.End); ok && following.Location != "" && address != "" {
		est := s.travel.EstimateDriveMinutes(ctx, address, following.Location)
		mustLeaveBy := following.Start.Add(-time.Duration(est.Minutes) * time.Minute)
		if c.End.After(mustLeaveBy) {
			return AvailableSlot{}, false
		}
	}

	return AvailableSlot{Start: c.Start, End: c.End, TravelNote: travelNote}, true
}
