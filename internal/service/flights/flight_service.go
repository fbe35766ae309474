package flights

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	Add(ctx context.Context, input AddFlightInput) (int64, error)
	Search(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	EnsureSeedData(ctx context.Context) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type AddFlightInput struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PriceCents  int64  `json:"price_cents"`
	Seats       int    `json:"seats"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	log   *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, log *zap.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

func (s *FlightService) Add(ctx context.Context, input AddFlightInput) (int64, error) {
	if err := validateFlight(input); err != nil {
		return 0, err
	}

	flight := &domain.Flight{
		Departure:      strings.TrimSpace(input.Departure),
		Destination:    strings.TrimSpace(input.Destination),
		Date:           input.Date,
		Time:           input.Time,
		PriceCents:     input.PriceCents,
		SeatsAvailable: input.Seats,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return 0, &domain.StorageError{Op: "create flight", Err: err}
	}
	s.invalidate(ctx)
	return flight.ID, nil
}

// Search serves the unfiltered listing from the cache when possible; filtered
// queries always go to the catalog.
func (s *FlightService) Search(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	if filter.Empty() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, &domain.StorageError{Op: "search flights", Err: err}
	}
	if filter.Empty() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureSeedData inserts the default flight dataset when the catalog is empty.
func (s *FlightService) EnsureSeedData(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return &domain.StorageError{Op: "count flights", Err: err}
	}
	if n > 0 {
		return nil
	}
	seed := domain.SeedFlights()
	for i := range seed {
		if err := s.repo.Create(ctx, &seed[i]); err != nil {
			return &domain.StorageError{Op: "seed flights", Err: err}
		}
	}
	s.log.Info("seeded flight catalog", zap.Int("flights", len(seed)))
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("flight cache invalidation failed", zap.Error(err))
	}
}

func validateFlight(input AddFlightInput) error {
	if strings.TrimSpace(input.Departure) == "" {
		return &domain.ValidationError{Field: "departure", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Reason: "must not be empty"}
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return &domain.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return &domain.ValidationError{Field: "time", Reason: "must be HH:MM (24-hour)"}
	}
	if input.PriceCents <= 0 {
		return &domain.ValidationError{Field: "price_cents", Reason: "must be positive"}
	}
	if input.Seats <= 0 {
		return &domain.ValidationError{Field: "seats", Reason: "must be positive"}
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
