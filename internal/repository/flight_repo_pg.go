package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightFilter narrows Search. Departure and Destination match as
// case-insensitive substrings, Date matches exactly; empty fields are skipped.
type FlightFilter struct {
	Departure   string
	Destination string
	Date        string
}

func (f FlightFilter) Empty() bool {
	return f.Departure == "" && f.Destination == "" && f.Date == ""
}

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Search(ctx context.Context, filter FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	AdjustSeats(ctx context.Context, flightID int64, delta int) (int, error)
	Count(ctx context.Context) (int, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (departure, destination, flight_date, flight_time, price_cents, seats_available)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		flight.Departure, flight.Destination, flight.Date, flight.Time, flight.PriceCents, flight.SeatsAvailable).
		Scan(&flight.ID)
}

// buildSearchQuery assembles the filtered flight listing. Departure and
// destination become case-insensitive substring matches, date an exact
// equality; rows come back in insertion order.
func buildSearchQuery(filter FlightFilter) (string, []interface{}) {
	query := `SELECT id, departure, destination, flight_date, flight_time, price_cents, seats_available FROM flights`
	var (
		conds  []string
		params []interface{}
	)
	if filter.Departure != "" {
		params = append(params, "%"+filter.Departure+"%")
		conds = append(conds, fmt.Sprintf("departure ILIKE $%d", len(params)))
	}
	if filter.Destination != "" {
		params = append(params, "%"+filter.Destination+"%")
		conds = append(conds, fmt.Sprintf("destination ILIKE $%d", len(params)))
	}
	if filter.Date != "" {
		params = append(params, filter.Date)
		conds = append(conds, fmt.Sprintf("flight_date = $%d", len(params)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"
	return query, params
}

func (r *PGFlightRepository) Search(ctx context.Context, filter FlightFilter) ([]domain.Flight, error) {
	query, params := buildSearchQuery(filter)
	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Departure, &f.Destination, &f.Date, &f.Time, &f.PriceCents, &f.SeatsAvailable); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, departure, destination, flight_date, flight_time, price_cents, seats_available FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Departure, &f.Destination, &f.Date, &f.Time, &f.PriceCents, &f.SeatsAvailable); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// AdjustSeats applies a guarded seat-count change and returns the resulting
// availability. The guard keeps seats_available from going negative, so a
// negative delta is a compare-and-swap: concurrent bookings that would jointly
// oversell serialize in the database and the losers come back with
// InsufficientSeatsError.
func (r *PGFlightRepository) AdjustSeats(ctx context.Context, flightID int64, delta int) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx, `UPDATE flights SET seats_available = seats_available + $2 WHERE id=$1 AND seats_available + $2 >= 0 RETURNING seats_available`, flightID, delta).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	// The guard missed: either the flight is gone or the decrement would have
	// gone negative.
	var current int
	switch err := r.db.QueryRow(ctx, `SELECT seats_available FROM flights WHERE id=$1`, flightID).Scan(&current); {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, domain.ErrFlightNotFound
	case err != nil:
		return 0, err
	}
	return current, &domain.InsufficientSeatsError{FlightID: flightID, Requested: -delta, Remaining: current}
}

func (r *PGFlightRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n)
	return n, err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
