package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the flights and bookings tables if they do not exist.
// seats_available carries the only enforced seat invariant; bookings keep a
// foreign key to flights, and ids for both come from sequences so restoring a
// deleted booking under its original id stays possible.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS flights (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			departure TEXT NOT NULL,
			destination TEXT NOT NULL,
			flight_date TEXT NOT NULL,
			flight_time TEXT NOT NULL,
			price_cents BIGINT NOT NULL,
			seats_available INT NOT NULL CHECK (seats_available >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			flight_id BIGINT NOT NULL REFERENCES flights(id),
			passenger_name TEXT NOT NULL,
			num_seats INT NOT NULL,
			total_cents BIGINT NOT NULL,
			booking_date DATE NOT NULL DEFAULT CURRENT_DATE
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
