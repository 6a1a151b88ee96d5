package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimate-booking-backend/config"
	"estimate-booking-backend/internal/calendar"
	"estimate-booking-backend/internal/slots"
	"estimate-booking-backend/internal/travel"
)

type stubCalendar struct {
	events []calendar.Event
	err    error
}

func (s *stubCalendar) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	return s.events, s.err
}

type stubEstimator struct {
	minutes int
}

func (s *stubEstimator) EstimateDriveMinutes(ctx context.Context, origin, destination string) travel.Estimate {
	return travel.Estimate{Minutes: s.minutes}
}

func newSlotsRouter(t *testing.T, cal slots.CalendarSource) *gin.Engine {
	t.Helper()
	cfg := &config.SchedulingConfig{
		WorkStartHour:           8,
		WorkEndHour:             18,
		EstimateDurationMinutes: 30,
		BufferMinutes:           15,
		StrideMinutes:           30,
		DaysAhead:               14,
		Timezone:                "UTC",
		MaxConcurrentChecks:     4,
	}
	slotSvc, err := slots.NewService(cfg, cal, &stubEstimator{minutes: 20})
	require.NoError(t, err)

	r := gin.Default()
	handler := NewHandler(slotSvc, nil, nil, nil)
	r.GET("/api/slots", handler.GetSlots)
	r.GET("/api/days", handler.GetDays)
	return r
}

func TestGetSlots_MissingDate(t *testing.T) {
	router := newSlotsRouter(t, &stubCalendar{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/slots", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing date parameter"}`, w.Body.String())
}

func TestGetSlots_InvalidDate(t *testing.T) {
	router := newSlotsRouter(t, &stubCalendar{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/slots?date=tomorrow", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSlots_EmptyDayIsValid(t *testing.T) {
	// The calendar answers but the day is fully booked out by the working
	// hours themselves being busy; an empty result is a 200, not an error.
	router := newSlotsRouter(t, &stubCalendar{events: []calendar.Event{{
		Start:    calendar.EventTime{DateTime: "2026-09-07T08:00:00Z"},
		End:      calendar.EventTime{DateTime: "2026-09-07T18:00:00Z"},
		Location: "A",
	}}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/slots?date=2026-09-07", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slots":[]}`, w.Body.String())
}

func TestGetSlots_CalendarFailure(t *testing.T) {
	router := newSlotsRouter(t, &stubCalendar{err: assert.AnError})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/slots?date=2026-09-07", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch slots"}`, w.Body.String())
}

func TestGetSlots_ReturnsOrderedSlots(t *testing.T) {
	router := newSlotsRouter(t, &stubCalendar{events: []calendar.Event{{
		Start:    calendar.EventTime{DateTime: "2026-09-07T10:00:00Z"},
		End:      calendar.EventTime{DateTime: "2026-09-07T10:30:00Z"},
		Location: "A",
	}}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/slots?date=2026-09-07&address=B", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []struct {
			Start      time.Time `json:"start"`
			End        time.Time `json:"end"`
			TravelNote string    `json:"travelNote"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Slots)

	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].Start.Before(resp.Slots[i].Start))
	}
}

func TestGetDays(t *testing.T) {
	router := newSlotsRouter(t, &stubCalendar{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/days", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days []string `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Days)
	for _, d := range resp.Days {
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
}
