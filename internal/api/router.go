package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"estimate-booking-backend/config"
	"estimate-booking-backend/internal/booking"
	"estimate-booking-backend/internal/mw"
	"estimate-booking-backend/internal/slots"
	"estimate-booking-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, slotSvc *slots.Service, bookingSvc *booking.Service, st store.Store, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(slotSvc, bookingSvc, st, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Slot responses must reflect the live calendar, so only the day
		// list is cached.
		api.GET("/slots", handler.GetSlots)
		api.GET("/days", caching, handler.GetDays)

		api.POST("/book", handler.PostBook)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
