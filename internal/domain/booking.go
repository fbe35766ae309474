package domain

import "time"

// Booking ties a passenger to seats on a flight. It exists only together with
// the matching seat debit on the flight: created and destroyed exclusively by
// the reservation engine, never in a partial state.
type Booking struct {
	ID            int64
	FlightID      int64
	PassengerName string
	NumSeats      int
	TotalCents    int64
	BookingDate   time.Time
}

// BookingView is a booking joined with its flight's route fields for display.
// PricePerSeatCents comes from the live flight row and can diverge from
// TotalCents/NumSeats if the flight was repriced after booking; TotalCents
// stays the authoritative amount.
type BookingView struct {
	BookingID         int64
	Departure         string
	Destination       string
	Date              string
	Time              string
	PassengerName     string
	NumSeats          int
	TotalCents        int64
	PricePerSeatCents int64
	BookingDate       time.Time
}
