package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify %s about %s: booking %d, flight %d, %d seat(s), total %d cents\n",
		event.PassengerName, event.Type, event.BookingID, event.FlightID, event.NumSeats, event.TotalCents)
	return nil
}
