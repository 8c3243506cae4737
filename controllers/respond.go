// controllers/respond.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook-backend/services"
	"restobook-backend/utils"
)

// respondServiceError maps the typed service errors to HTTP status codes:
// validation 400, not found 404, slot full 409, invalid transition 422,
// store unavailable 503. Anything else is a 500.
func respondServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		utils.RespondWithError(c, http.StatusBadRequest, validation.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrSlotFull):
		utils.RespondWithError(c, http.StatusConflict, "The selected time slot cannot fit your party")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Status change not allowed from the current status")
	case errors.Is(err, services.ErrStoreUnavailable):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reservation store unavailable")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
