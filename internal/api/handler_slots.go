package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"estimate-booking-backend/internal/slots"
)

const dateLayout = "2006-01-02"

// GetSlots handles the GET /api/slots request. The date parameter is
// required; address is optional and enables the travel feasibility checks.
// An empty day is a valid 200 response with an empty slot list.
func (h *Handler) GetSlots(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing date parameter"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, dateParam, h.slots.Location())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD."})
		return
	}

	address := c.Query("address")

	available, err := h.slots.AvailableSlots(c.Request.Context(), date, address)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slots"})
		return
	}

	if available == nil {
		available = []slots.AvailableSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": available})
}

// GetDays handles the GET /api/days request, listing the dates in the
// lookahead window on which slots may be requested.
func (h *Handler) GetDays(c *gin.Context) {
	days := h.slots.BookableDays(time.Now())

	formatted := make([]string, len(days))
	for i, d := range days {
		formatted[i] = d.Format(dateLayout)
	}
	c.JSON(http.StatusOK, gin.H{"days": formatted})
}
