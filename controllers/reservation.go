// controllers/reservation.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/services"
	"restobook-backend/utils"
)

// CreateReservationInput defines the expected JSON structure for a public
// booking request. Status is deliberately absent: new bookings are always
// pending.
type CreateReservationInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

// UpdateReservationStatusInput defines the staff-initiated status change
type UpdateReservationStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateReservation handles the public booking form
func CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	date, err := utils.ParseCalendarDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := services.CreateReservation(config.DB, Catalog, services.BookingInput{
		Name:            input.Name,
		Email:           utils.NormalizeEmail(input.Email),
		Phone:           input.Phone,
		Date:            date,
		Time:            input.Time,
		PartySize:       input.Guests,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Best-effort event for downstream confirmation mails; the booking stands
	// even if the broker is down.
	if err := services.PublishReservationEvent(c.Request.Context(), reservation); err != nil {
		log.Printf("reservation %s: event publish failed: %v", reservation.Code, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservationCode": reservation.Code,
		"status":          reservation.Status,
	})
}

// GetReservationByCode lets a guest look up their booking
func GetReservationByCode(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Reservation store unavailable")
		}
		return
	}

	c.JSON(http.StatusOK, reservationJSON(reservation))
}

// GetReservations lists reservations for the back office, optionally filtered
// by date and status
func GetReservations(c *gin.Context) {
	query := config.DB.Order("date DESC, time, created_at")

	if rawDate := c.Query("date"); rawDate != "" {
		date, err := utils.ParseCalendarDate(rawDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		query = query.Where("date = ?", utils.BeginningOfDayUTC(date))
	}
	if status := c.Query("status"); status != "" {
		if !models.IsReservationStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown reservation status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reservation store unavailable")
		return
	}

	out := make([]gin.H, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, reservationJSON(r))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateReservationStatus applies a staff-initiated lifecycle transition
func UpdateReservationStatus(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input UpdateReservationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := services.TransitionReservation(config.DB, reservationUUID.String(), input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := services.PublishReservationEvent(c.Request.Context(), reservation); err != nil {
		log.Printf("reservation %s: event publish failed: %v", reservation.Code, err)
	}

	c.JSON(http.StatusOK, reservationJSON(*reservation))
}

func reservationJSON(r models.Reservation) gin.H {
	return gin.H{
		"id":              r.ID,
		"code":            r.Code,
		"name":            r.CustomerName,
		"email":           r.CustomerEmail,
		"phone":           r.CustomerPhone,
		"date":            utils.FormatCalendarDate(r.Date),
		"time":            r.Time,
		"guests":          r.PartySize,
		"status":          r.Status,
		"specialRequests": r.SpecialRequests,
		"createdAt":       r.CreatedAt,
		"updatedAt":       r.UpdatedAt,
	}
}
