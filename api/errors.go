package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the engine's error kinds to HTTP statuses: validation 400,
// missing flight/booking 404, seat-availability rejection 409, storage 500.
func writeError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	var insufficient *domain.InsufficientSeatsError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "remaining_seats": insufficient.Remaining})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
