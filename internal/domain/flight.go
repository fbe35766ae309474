package domain

// Flight is a scheduled route with per-seat pricing and a live seat count.
// SeatsAvailable is never written outside the reservation engine and never
// drops below zero. No capacity ceiling is stored, so cancellations can push
// availability past the originally configured count.
type Flight struct {
	ID             int64
	Departure      string
	Destination    string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM, 24-hour
	PriceCents     int64
	SeatsAvailable int
}

// SeedFlights is the dataset inserted on first run against an empty catalog.
func SeedFlights() []Flight {
	return []Flight{
		{Departure: "New York", Destination: "London", Date: "2025-07-01", Time: "08:00", PriceCents: 75000, SeatsAvailable: 150},
		{Departure: "London", Destination: "Paris", Date: "2025-07-02", Time: "10:30", PriceCents: 20000, SeatsAvailable: 80},
		{Departure: "Paris", Destination: "Rome", Date: "2025-07-03", Time: "14:00", PriceCents: 15000, SeatsAvailable: 100},
		{Departure: "New York", Destination: "Tokyo", Date: "2025-07-10", Time: "18:00", PriceCents: 120000, SeatsAvailable: 200},
		{Departure: "Tokyo", Destination: "Sydney", Date: "2025-07-12", Time: "22:00", PriceCents: 90000, SeatsAvailable: 120},
	}
}
