package reservation

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationUseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	GetBooking(ctx context.Context, bookingID int64) (*domain.BookingView, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	FlightID      int64  `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	NumSeats      int    `json:"num_seats"`
}

// ReservationService keeps the flight catalog and the booking ledger moving in
// lockstep: every booking row is matched by a seat debit on its flight, with a
// compensating write whenever the second half of an operation fails.
type ReservationService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	log                *zap.Logger
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	log *zap.Logger,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		bookings:     bookings,
		flights:      flights,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		log:          log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) Book(ctx context.Context, input BookInput) (*domain.Booking, error) {
	if input.NumSeats <= 0 {
		return nil, &domain.ValidationError{Field: "num_seats", Reason: "must be positive"}
	}
	if strings.TrimSpace(input.PassengerName) == "" {
		return nil, &domain.ValidationError{Field: "passenger_name", Reason: "must not be empty"}
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			return nil, err
		}
		return nil, &domain.StorageError{Op: "load flight", Err: err}
	}
	if input.NumSeats > flight.SeatsAvailable {
		return nil, &domain.InsufficientSeatsError{FlightID: flight.ID, Requested: input.NumSeats, Remaining: flight.SeatsAvailable}
	}

	// Price snapshot: the total is fixed at booking time and never re-derived
	// from the flight row.
	totalCents := flight.PriceCents * int64(input.NumSeats)

	// The guarded decrement is the serialization point. A concurrent booking
	// that wins the last seats makes this one lose here, not oversell.
	if _, err := s.flights.AdjustSeats(ctx, flight.ID, -input.NumSeats); err != nil {
		var insufficient *domain.InsufficientSeatsError
		if errors.Is(err, domain.ErrFlightNotFound) || errors.As(err, &insufficient) {
			return nil, err
		}
		return nil, &domain.StorageError{Op: "reserve seats", Err: err}
	}

	booking := &domain.Booking{
		FlightID:      flight.ID,
		PassengerName: strings.TrimSpace(input.PassengerName),
		NumSeats:      input.NumSeats,
		TotalCents:    totalCents,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		// Undo the seat debit so no decrement survives without a booking.
		if _, undoErr := s.flights.AdjustSeats(ctx, flight.ID, input.NumSeats); undoErr != nil {
			s.log.Error("seat rollback after failed booking insert",
				zap.Int64("flight_id", flight.ID),
				zap.Int("seats", input.NumSeats),
				zap.Error(undoErr))
		}
		return nil, &domain.StorageError{Op: "create booking", Err: err}
	}

	s.invalidate(ctx)
	s.publish(ctx, kafka.EventBookingCreated, booking)
	return booking, nil
}

func (s *ReservationService) Cancel(ctx context.Context, bookingID int64) error {
	// The delete is the claim: of two concurrent cancels only one gets the
	// row back, so seats are never credited twice.
	booking, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return err
		}
		return &domain.StorageError{Op: "delete booking", Err: err}
	}

	if _, err := s.flights.AdjustSeats(ctx, booking.FlightID, booking.NumSeats); err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			// Orphaned booking: the flight row is gone. The cancellation still
			// stands, there is just no seat count left to credit.
			s.log.Warn("cancelled booking references missing flight",
				zap.Int64("booking_id", booking.ID),
				zap.Int64("flight_id", booking.FlightID))
		} else {
			// Put the booking back so the ledger and the seat count stay in
			// step before surfacing the failure.
			if restoreErr := s.bookings.Restore(ctx, booking); restoreErr != nil {
				s.log.Error("booking restore after failed seat release",
					zap.Int64("booking_id", booking.ID),
					zap.Error(restoreErr))
			}
			return &domain.StorageError{Op: "release seats", Err: err}
		}
	}

	s.invalidate(ctx)
	s.publish(ctx, kafka.EventBookingCancelled, booking)
	return nil
}

func (s *ReservationService) GetBooking(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	view, err := s.bookings.GetView(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, err
		}
		return nil, &domain.StorageError{Op: "load booking", Err: err}
	}
	return view, nil
}

func (s *ReservationService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("flight cache invalidation failed", zap.Error(err))
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		BookingID:     booking.ID,
		FlightID:      booking.FlightID,
		PassengerName: booking.PassengerName,
		NumSeats:      booking.NumSeats,
		TotalCents:    booking.TotalCents,
		BookingDate:   booking.BookingDate,
	}
	key := strconv.FormatInt(booking.ID, 10)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		s.log.Warn("publish booking event failed",
			zap.String("type", eventType),
			zap.Int64("booking_id", booking.ID),
			zap.Error(err))
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			s.log.Warn("publish notification event failed",
				zap.String("type", eventType),
				zap.Int64("booking_id", booking.ID),
				zap.Error(err))
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
