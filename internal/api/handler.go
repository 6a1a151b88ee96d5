package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"estimate-booking-backend/internal/booking"
	"estimate-booking-backend/internal/slots"
	"estimate-booking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	slots   *slots.Service
	booking *booking.Service
	store   store.Store
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(slotSvc *slots.Service, bookingSvc *booking.Service, st store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		slots:   slotSvc,
		booking: bookingSvc,
		store:   st,
		webpush: webpushOptions,
	}
}
