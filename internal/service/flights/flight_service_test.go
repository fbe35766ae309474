package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Search(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) AdjustSeats(ctx context.Context, flightID int64, delta int) (int, error) {
	args := m.Called(ctx, flightID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestFlightService_Add_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flight).ID = 6
		}).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	id, err := service.Add(ctx, AddFlightInput{
		Departure:   "Berlin",
		Destination: "Madrid",
		Date:        "2025-08-15",
		Time:        "09:45",
		PriceCents:  18000,
		Seats:       90,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(6), id)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Add_ValidationErrors(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, nil, zap.NewNop())
	ctx := context.Background()

	valid := AddFlightInput{
		Departure:   "Berlin",
		Destination: "Madrid",
		Date:        "2025-08-15",
		Time:        "09:45",
		PriceCents:  18000,
		Seats:       90,
	}

	testCases := []struct {
		name   string
		mutate func(*AddFlightInput)
		field  string
	}{
		{"empty departure", func(in *AddFlightInput) { in.Departure = "  " }, "departure"},
		{"empty destination", func(in *AddFlightInput) { in.Destination = "" }, "destination"},
		{"bad date", func(in *AddFlightInput) { in.Date = "15-08-2025" }, "date"},
		{"bad time", func(in *AddFlightInput) { in.Time = "9:45 PM" }, "time"},
		{"zero price", func(in *AddFlightInput) { in.PriceCents = 0 }, "price_cents"},
		{"negative price", func(in *AddFlightInput) { in.PriceCents = -500 }, "price_cents"},
		{"zero seats", func(in *AddFlightInput) { in.Seats = 0 }, "seats"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			id, err := service.Add(ctx, input)
			assert.Zero(t, id)

			var validation *domain.ValidationError
			assert.True(t, errors.As(err, &validation))
			assert.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, zap.NewNop())

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, Departure: "New York", Destination: "London"}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	result, err := service.Search(ctx, repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheMissFillsCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, zap.NewNop())

	ctx := context.Background()
	flights := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("Search", ctx, repository.FlightFilter{}).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.Search(ctx, repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, zap.NewNop())

	ctx := context.Background()
	filter := repository.FlightFilter{Departure: "new"}
	flights := []domain.Flight{{ID: 1, Departure: "New York"}, {ID: 4, Departure: "New York"}}
	mockRepo.On("Search", ctx, filter).Return(flights, nil).Once()

	result, err := service.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertNotCalled(t, "GetFlights", mock.Anything)
	mockCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_EnsureSeedData_EmptyCatalog(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("Count", ctx).Return(0, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Times(5)

	assert.NoError(t, service.EnsureSeedData(ctx))
	mockRepo.AssertExpectations(t)
}

func TestFlightService_EnsureSeedData_AlreadySeeded(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("Count", ctx).Return(5, nil).Once()

	assert.NoError(t, service.EnsureSeedData(ctx))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
