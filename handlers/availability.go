package handlers

import (
	"net/http"
	"strconv"
	"time"

	"careplus/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes conflict checks and open-slot enumeration.
type AvailabilityHandler struct {
	Engine availability.Engine
	Logger *zap.Logger
}

// NewAvailabilityHandler creates a new AvailabilityHandler instance.
func NewAvailabilityHandler(engine availability.Engine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// CheckAvailabilityHandler reports whether a physician is free at an instant.
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	physician := c.Query("physician")
	schedule := c.Query("schedule")
	if physician == "" || schedule == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "physician and schedule query parameters are required"})
		return
	}
	if _, err := time.Parse(time.RFC3339Nano, schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule must be a valid RFC3339 timestamp"})
		return
	}

	result := h.Engine.CheckAvailability(physician, schedule)
	c.JSON(http.StatusOK, result)
}

// AvailableSlotsHandler enumerates the open slots for a physician on a day.
func (h *AvailabilityHandler) AvailableSlotsHandler(c *gin.Context) {
	physician := c.Query("physician")
	date := c.Query("date")
	if physician == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "physician and date query parameters are required"})
		return
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	slotMinutes := 0
	if raw := c.Query("duration"); raw != "" {
		slotMinutes, err = strconv.Atoi(raw)
		if err != nil || slotMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
			return
		}
	}

	slots := h.Engine.AvailableSlots(physician, day, slotMinutes)
	c.JSON(http.StatusOK, gin.H{
		"physician": physician,
		"date":      date,
		"slots":     slots,
	})
}
