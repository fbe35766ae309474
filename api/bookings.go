package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airreserve/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service reservation.ReservationUseCase
}

type bookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	FlightID      int64  `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	NumSeats      int    `json:"num_seats"`
	TotalCents    int64  `json:"total_cents"`
	BookingDate   string `json:"booking_date"`
}

type bookingViewResponse struct {
	BookingID         int64  `json:"booking_id"`
	Departure         string `json:"departure"`
	Destination       string `json:"destination"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	PassengerName     string `json:"passenger_name"`
	NumSeats          int    `json:"num_seats"`
	TotalCents        int64  `json:"total_cents"`
	PricePerSeatCents int64  `json:"price_per_seat_cents"`
	BookingDate       string `json:"booking_date"`
}

func NewBookingHandler(service reservation.ReservationUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req reservation.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		BookingID:     booking.ID,
		FlightID:      booking.FlightID,
		PassengerName: booking.PassengerName,
		NumSeats:      booking.NumSeats,
		TotalCents:    booking.TotalCents,
		BookingDate:   booking.BookingDate.Format(time.DateOnly),
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	view, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingViewResponse{
		BookingID:         view.BookingID,
		Departure:         view.Departure,
		Destination:       view.Destination,
		Date:              view.Date,
		Time:              view.Time,
		PassengerName:     view.PassengerName,
		NumSeats:          view.NumSeats,
		TotalCents:        view.TotalCents,
		PricePerSeatCents: view.PricePerSeatCents,
		BookingDate:       view.BookingDate.Format(time.DateOnly),
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
