package commands_test

import (
	"context"
	"errors"
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChangeDestinationCargoRepository struct{ mock.Mock }

func (m *MockChangeDestinationCargoRepository) Add(_ context.Context, _ *cargo.Cargo) error {
	return errors.New("not implemented in mock")
}
func (m *MockChangeDestinationCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockChangeDestinationCargoRepository) Get(
	ctx context.Context, trackingID kernel.TrackingID,
) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}
func (m *MockChangeDestinationCargoRepository) Exists(_ context.Context, _ kernel.TrackingID) (bool, error) {
	return false, errors.New("not implemented in mock")
}
func (m *MockChangeDestinationCargoRepository) GetAllUnderway(_ context.Context) ([]*cargo.Cargo, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockChangeDestinationCargoRepository) NextTrackingID(_ context.Context) (kernel.TrackingID, error) {
	return kernel.TrackingID{}, errors.New("not implemented in mock")
}

type MockChangeDestinationLocationRepository struct{ mock.Mock }

func (m *MockChangeDestinationLocationRepository) Add(_ context.Context, _ location.Location) error {
	return errors.New("not implemented in mock")
}
func (m *MockChangeDestinationLocationRepository) Get(
	ctx context.Context, unLocode kernel.UnLocode,
) (location.Location, error) {
	args := m.Called(ctx, unLocode)
	return args.Get(0).(location.Location), args.Error(1)
}
func (m *MockChangeDestinationLocationRepository) GetAll(_ context.Context) ([]location.Location, error) {
	return nil, errors.New("not implemented in mock")
}

type MockChangeDestinationUoW struct{ mock.Mock }

func (m *MockChangeDestinationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockChangeDestinationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockChangeDestinationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockChangeDestinationUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}
func (m *MockChangeDestinationUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockChangeDestinationUoWFactory struct{ mock.Mock }

func (m *MockChangeDestinationUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

func TestChangeDestinationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	booked := bookedCargo(t, "ABC123")
	require.NoError(t, booked.AssignToRoute(shanghaiToGothenburg(t)))

	newDestination, err := kernel.NewUnLocode("JNTKO")
	require.NoError(t, err)
	cmd, err := commands.NewChangeDestinationCommand(booked.TrackingID(), newDestination)
	require.NoError(t, err)

	cargoRepo := new(MockChangeDestinationCargoRepository)
	locationRepo := new(MockChangeDestinationLocationRepository)
	uow := new(MockChangeDestinationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, booked.TrackingID()).Return(booked, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, newDestination).Return(location.Tokyo, nil).Once(),
		cargoRepo.On("Update", mock.Anything, booked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChangeDestinationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDestinationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	sameDestination, err := booked.RouteSpecification().Destination().SameIdentityAs(location.Tokyo)
	require.NoError(t, err)
	assert.True(t, sameDestination)

	// Origin and deadline stay as booked; the old itinerary no longer fits.
	sameOrigin, err := booked.RouteSpecification().Origin().SameIdentityAs(location.Shanghai)
	require.NoError(t, err)
	assert.True(t, sameOrigin)
	assert.Equal(t, scheduleDay(20), booked.RouteSpecification().ArrivalDeadline())
	assert.Equal(t, cargo.Misrouted, booked.Delivery().RoutingStatus())

	cargoRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeDestinationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockChangeDestinationUoWFactory)

	h := commands.NewChangeDestinationCommandHandler(factory)
	err := h.Handle(ctx, commands.ChangeDestinationCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeDestinationCommandIsNotConstructed)
}

func TestChangeDestinationCommandHandler_Handle_CargoNotFound(t *testing.T) {
	ctx := t.Context()
	trackingID, err := kernel.NewTrackingID("MISSING")
	require.NoError(t, err)
	destination, err := kernel.NewUnLocode("JNTKO")
	require.NoError(t, err)
	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	require.NoError(t, err)

	cargoRepo := new(MockChangeDestinationCargoRepository)
	uow := new(MockChangeDestinationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).Return(nil, errors.New("cargo not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChangeDestinationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDestinationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	cargoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeDestinationCommandHandler_Handle_UnknownLocation(t *testing.T) {
	ctx := t.Context()
	booked := bookedCargo(t, "ABC123")
	destination, err := kernel.NewUnLocode("XXZZZ")
	require.NoError(t, err)
	cmd, err := commands.NewChangeDestinationCommand(booked.TrackingID(), destination)
	require.NoError(t, err)

	cargoRepo := new(MockChangeDestinationCargoRepository)
	locationRepo := new(MockChangeDestinationLocationRepository)
	uow := new(MockChangeDestinationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, booked.TrackingID()).Return(booked, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, destination).
			Return(location.Location{}, errors.New("location not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChangeDestinationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDestinationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	cargoRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
