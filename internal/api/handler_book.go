package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"estimate-booking-backend/internal/booking"
)

type bookRequest struct {
	Name           string    `json:"name" binding:"required"`
	Phone          string    `json:"phone" binding:"required"`
	Email          string    `json:"email"`
	Address        string    `json:"address" binding:"required"`
	JobType        string    `json:"jobType" binding:"required"`
	FloorCondition string    `json:"floorCondition"`
	HearAboutUs    string    `json:"hearAboutUs"`
	Notes          string    `json:"notes"`
	SlotStart      time.Time `json:"slotStart" binding:"required"`
	SlotEnd        time.Time `json:"slotEnd" binding:"required"`
}

// PostBook handles the POST /api/book request: one booking attempt, one
// calendar write, no retry.
func (h *Handler) PostBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := h.booking.Book(c.Request.Context(), booking.Request{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		JobType:        req.JobType,
		FloorCondition: req.FloorCondition,
		HearAboutUs:    req.HearAboutUs,
		Notes:          req.Notes,
		SlotStart:      req.SlotStart,
		SlotEnd:        req.SlotEnd,
	})
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
