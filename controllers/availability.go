// controllers/availability.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/services"
	"restobook-backend/utils"
)

// Catalog is the slot configuration shared by the availability and booking
// endpoints. Loaded once at startup; read-only afterwards.
var Catalog services.TimeSlotCatalog

// GetAvailability reports per-slot remaining capacity for a date and party
// size: GET /api/reservations/availability?date=2024-03-25&guests=4
func GetAvailability(c *gin.Context) {
	date, err := utils.ParseCalendarDate(c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	guests := 2
	if raw := c.Query("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil || guests < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "guests must be a positive integer")
			return
		}
	}

	// Only open bookings matter for capacity; cancelled and completed rows
	// are filtered here rather than in the engine to keep the query small.
	var reservations []models.Reservation
	if err := config.DB.
		Where("date = ? AND status IN ?", utils.BeginningOfDayUTC(date),
			[]string{models.ReservationPending, models.ReservationConfirmed}).
		Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reservation store unavailable")
		return
	}

	result := services.ComputeAvailability(Catalog, reservations, date, guests)

	c.JSON(http.StatusOK, gin.H{
		"date":         utils.FormatCalendarDate(result.Date),
		"guests":       result.Guests,
		"availability": result.Availability,
		"allTimeSlots": result.AllTimeSlots,
	})
}
