package appevents_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/appevents"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatcherCargoRepository struct{ mock.Mock }

func (m *MockDispatcherCargoRepository) Add(_ context.Context, _ *cargo.Cargo) error {
	return errors.New("not implemented in mock")
}
func (m *MockDispatcherCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockDispatcherCargoRepository) Get(
	ctx context.Context, trackingID kernel.TrackingID,
) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}
func (m *MockDispatcherCargoRepository) Exists(_ context.Context, _ kernel.TrackingID) (bool, error) {
	return false, errors.New("not implemented in mock")
}
func (m *MockDispatcherCargoRepository) GetAllUnderway(_ context.Context) ([]*cargo.Cargo, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDispatcherCargoRepository) NextTrackingID(_ context.Context) (kernel.TrackingID, error) {
	return kernel.TrackingID{}, errors.New("not implemented in mock")
}

type MockDispatcherEventRepository struct{ mock.Mock }

func (m *MockDispatcherEventRepository) Add(_ context.Context, _ handling.Event) error {
	return errors.New("not implemented in mock")
}
func (m *MockDispatcherEventRepository) GetHistory(
	ctx context.Context, trackingID kernel.TrackingID,
) (handling.History, error) {
	args := m.Called(ctx, trackingID)
	return args.Get(0).(handling.History), args.Error(1)
}

type MockDispatcherUoW struct{ mock.Mock }

func (m *MockDispatcherUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatcherUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatcherUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatcherUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}
func (m *MockDispatcherUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

type MockDispatcherUoWFactory struct{ mock.Mock }

func (m *MockDispatcherUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

func dispatcherDay(n int) time.Time {
	return time.Date(2009, time.March, n, 12, 0, 0, 0, time.UTC)
}

func dispatcherCargo(t *testing.T, id string) *cargo.Cargo {
	t.Helper()

	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	routeSpecification, err := cargo.NewRouteSpecification(
		location.Shanghai, location.Gothenburg, dispatcherDay(20))
	require.NoError(t, err)

	booked, err := cargo.NewCargo(trackingID, routeSpecification)
	require.NoError(t, err)
	return booked
}

func receivedEvent(t *testing.T, trackingID kernel.TrackingID) handling.Event {
	t.Helper()

	event, err := handling.NewEvent(
		trackingID, handling.Receive, location.Shanghai, nil,
		dispatcherDay(1), dispatcherDay(1).Add(time.Hour))
	require.NoError(t, err)
	return event
}

func boundDispatcher(
	factory commands.InspectionUoWFactory, logBuffer *bytes.Buffer,
) *appevents.Dispatcher {
	logger := slog.New(slog.NewTextHandler(logBuffer, nil))
	dispatcher := appevents.NewDispatcher(logger)
	dispatcher.BindInspectHandler(commands.NewInspectCargoCommandHandler(factory, dispatcher))
	return dispatcher
}

func TestDispatcher_CargoWasHandled_TriggersInspection(t *testing.T) {
	booked := dispatcherCargo(t, "ABC123")
	event := receivedEvent(t, booked.TrackingID())
	history, err := handling.NewHistory([]handling.Event{event})
	require.NoError(t, err)

	cargoRepo := new(MockDispatcherCargoRepository)
	eventRepo := new(MockDispatcherEventRepository)
	uow := new(MockDispatcherUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("CargoRepository").Return(cargoRepo).Once()
	cargoRepo.On("Get", mock.Anything, booked.TrackingID()).Return(booked, nil).Once()
	uow.On("HandlingEventRepository").Return(eventRepo).Once()
	eventRepo.On("GetHistory", mock.Anything, booked.TrackingID()).Return(history, nil).Once()
	cargoRepo.On("Update", mock.Anything, booked).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockDispatcherUoWFactory)
	factory.On("Create").Return(uow).Once()

	var logBuffer bytes.Buffer
	dispatcher := boundDispatcher(factory, &logBuffer)

	dispatcher.CargoWasHandled(t.Context(), event)
	dispatcher.Drain()

	mock.AssertExpectationsForObjects(t, factory, uow, cargoRepo, eventRepo)
	assert.Contains(t, logBuffer.String(), "cargo was handled")
	assert.Contains(t, logBuffer.String(), "ABC123")
	assert.Equal(t, cargo.InPort, booked.Delivery().TransportStatus())
}

func TestDispatcher_CargoWasHandled_InspectionFailureIsContained(t *testing.T) {
	booked := dispatcherCargo(t, "ABC123")
	event := receivedEvent(t, booked.TrackingID())

	beginErr := errors.New("connection lost")
	uow := new(MockDispatcherUoW)
	uow.On("Begin", mock.Anything).Return(beginErr).Once()

	factory := new(MockDispatcherUoWFactory)
	factory.On("Create").Return(uow).Once()

	var logBuffer bytes.Buffer
	dispatcher := boundDispatcher(factory, &logBuffer)

	// Must not panic and must not propagate the failure.
	dispatcher.CargoWasHandled(t.Context(), event)
	dispatcher.Drain()

	mock.AssertExpectationsForObjects(t, factory, uow)
	assert.Contains(t, logBuffer.String(), "asynchronous cargo inspection failed")
	assert.Contains(t, logBuffer.String(), "connection lost")
}

func TestDispatcher_CargoWasHandled_NoHandlerBound(t *testing.T) {
	booked := dispatcherCargo(t, "ABC123")
	event := receivedEvent(t, booked.TrackingID())

	var logBuffer bytes.Buffer
	dispatcher := appevents.NewDispatcher(slog.New(slog.NewTextHandler(&logBuffer, nil)))

	dispatcher.CargoWasHandled(t.Context(), event)
	dispatcher.Drain()

	assert.Contains(t, logBuffer.String(), "no inspection handler bound")
}

func TestDispatcher_CargoWasMisdirected_Logs(t *testing.T) {
	misdirected := dispatcherCargo(t, "ABC123")
	event, err := handling.NewEvent(
		misdirected.TrackingID(), handling.Receive, location.Hangzhou, nil,
		dispatcherDay(1), dispatcherDay(1).Add(time.Hour))
	require.NoError(t, err)
	history, err := handling.NewHistory([]handling.Event{event})
	require.NoError(t, err)
	require.NoError(t, misdirected.DeriveDeliveryProgress(history))

	var logBuffer bytes.Buffer
	dispatcher := appevents.NewDispatcher(slog.New(slog.NewTextHandler(&logBuffer, nil)))

	dispatcher.CargoWasMisdirected(t.Context(), misdirected)

	assert.Contains(t, logBuffer.String(), "cargo was misdirected")
	assert.Contains(t, logBuffer.String(), "ABC123")
	assert.Contains(t, logBuffer.String(), "CNHGH")
}

func TestDispatcher_CargoHasArrived_Logs(t *testing.T) {
	arrived := dispatcherCargo(t, "ABC123")

	var logBuffer bytes.Buffer
	dispatcher := appevents.NewDispatcher(slog.New(slog.NewTextHandler(&logBuffer, nil)))

	dispatcher.CargoHasArrived(t.Context(), arrived)

	assert.Contains(t, logBuffer.String(), "cargo has arrived")
	assert.Contains(t, logBuffer.String(), "SEGOT")
}
