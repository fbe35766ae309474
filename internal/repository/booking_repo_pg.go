package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetView(ctx context.Context, id int64) (*domain.BookingView, error)
	Delete(ctx context.Context, id int64) (*domain.Booking, error)
	Restore(ctx context.Context, booking *domain.Booking) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (flight_id, passenger_name, num_seats, total_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_date`,
		booking.FlightID, booking.PassengerName, booking.NumSeats, booking.TotalCents).
		Scan(&booking.ID, &booking.BookingDate)
}

func (r *PGBookingRepository) GetView(ctx context.Context, id int64) (*domain.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT
			b.id,
			f.departure,
			f.destination,
			f.flight_date,
			f.flight_time,
			b.passenger_name,
			b.num_seats,
			b.total_cents,
			f.price_cents,
			b.booking_date
		FROM bookings b
		JOIN flights f ON b.flight_id = f.id
		WHERE b.id=$1`, id)
	var v domain.BookingView
	if err := row.Scan(&v.BookingID, &v.Departure, &v.Destination, &v.Date, &v.Time, &v.PassengerName, &v.NumSeats, &v.TotalCents, &v.PricePerSeatCents, &v.BookingDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Delete removes the booking and hands the row back so the caller can reverse
// the seat debit. Only one concurrent cancel of the same id gets the row.
func (r *PGBookingRepository) Delete(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM bookings WHERE id=$1
		RETURNING id, flight_id, passenger_name, num_seats, total_cents, booking_date`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.PassengerName, &b.NumSeats, &b.TotalCents, &b.BookingDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Restore re-inserts a previously deleted booking under its original id. Used
// only by the reservation engine to undo a cancellation that failed midway.
func (r *PGBookingRepository) Restore(ctx context.Context, booking *domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (id, flight_id, passenger_name, num_seats, total_cents, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		booking.ID, booking.FlightID, booking.PassengerName, booking.NumSeats, booking.TotalCents, booking.BookingDate)
	return err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
