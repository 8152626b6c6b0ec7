package cargorepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(trackingID kernel.TrackingID, aggregate any) {
	m.Called(trackingID, aggregate)
}

// CargoRepositoryIntegrationTestSuite provides integration tests for
// CargoRepository using PostgreSQL containers to verify database
// persistence behavior.
type CargoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	cargoRepository *cargorepo.GormCargoRepository
	tracker         *MockAggregateTracker
}

func (suite *CargoRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
	))
}

func (suite *CargoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE legs, cargos, carrier_movements, voyages").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.cargoRepository = cargorepo.NewGormCargoRepository(suite.db, suite.tracker)

	// Legs reference voyages by number, the voyages table must hold them.
	voyages := voyagerepo.NewGormVoyageRepository(suite.db)
	for _, v := range voyage.Samples() {
		suite.Require().NoError(voyages.Add(context.Background(), v))
	}
}

func (suite *CargoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CargoRepositoryIntegrationTestSuite) TestAdd_UnroutedCargo_Success() {
	ctx := context.Background()

	booked := suite.bookedCargo("ABC123")
	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()

	err := suite.cargoRepository.Add(ctx, booked)
	suite.Require().NoError(err)

	suite.assertCargoCount(1)
	suite.assertLegCount(0)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_BookedCargo_RestoresRouteSpecification() {
	ctx := context.Background()

	booked := suite.bookedCargo("ABC123")
	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()
	suite.Require().NoError(suite.cargoRepository.Add(ctx, booked))

	retrieved, err := suite.cargoRepository.Get(ctx, booked.TrackingID())
	suite.Require().NoError(err)

	suite.Equal("ABC123", retrieved.TrackingID().String())
	suite.Equal("CNSHA", retrieved.Origin().UnLocode().String())
	suite.Equal("CNSHA", retrieved.RouteSpecification().Origin().UnLocode().String())
	suite.Equal("SEGOT", retrieved.RouteSpecification().Destination().UnLocode().String())
	suite.True(suite.day(20).Equal(retrieved.RouteSpecification().ArrivalDeadline()))
	suite.True(retrieved.Itinerary().IsEmpty())
	suite.Equal(cargo.NotRouted, retrieved.Delivery().RoutingStatus())
	suite.Equal(cargo.NotReceived, retrieved.Delivery().TransportStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_RoutedCargo_RestoresItineraryAndDelivery() {
	ctx := context.Background()

	routed := suite.routedCargo("ABC123")
	suite.handleEvent(routed, handling.Receive, location.Shanghai, nil, suite.day(1))

	suite.tracker.On("TrackAggregate", routed.TrackingID(), routed).Once()
	suite.Require().NoError(suite.cargoRepository.Add(ctx, routed))

	retrieved, err := suite.cargoRepository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)

	legs := retrieved.Itinerary().Legs()
	suite.Require().Len(legs, 2)
	suite.Equal("V300", legs[0].Voyage().VoyageNumber().String())
	suite.Equal("CNSHA", legs[0].LoadLocation().UnLocode().String())
	suite.Equal("NLRTM", legs[0].UnloadLocation().UnLocode().String())
	suite.Equal("NLRTM", legs[1].LoadLocation().UnLocode().String())
	suite.Equal("SEGOT", legs[1].UnloadLocation().UnLocode().String())

	suite.Equal(cargo.Routed, retrieved.Delivery().RoutingStatus())
	suite.Equal(cargo.InPort, retrieved.Delivery().TransportStatus())
	suite.False(retrieved.Delivery().IsMisdirected())
	suite.Equal("CNSHA", retrieved.Delivery().LastKnownLocation().UnLocode().String())

	lastEvent, ok := retrieved.Delivery().LastEvent()
	suite.Require().True(ok)
	suite.Equal(handling.Receive, lastEvent.Type())
	suite.True(suite.day(1).Equal(lastEvent.CompletionTime()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_NonExistentCargo_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.cargoRepository.Get(ctx, suite.trackingID("MISSING"))

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_AssignedRoute_ReplacesLegs() {
	ctx := context.Background()

	booked := suite.bookedCargo("ABC123")
	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()
	suite.Require().NoError(suite.cargoRepository.Add(ctx, booked))

	suite.Require().NoError(booked.AssignToRoute(suite.shanghaiToGothenburg()))
	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()
	suite.Require().NoError(suite.cargoRepository.Update(ctx, booked))

	suite.assertLegCount(2)

	retrieved, err := suite.cargoRepository.Get(ctx, booked.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(cargo.Routed, retrieved.Delivery().RoutingStatus())
	suite.Len(retrieved.Itinerary().Legs(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_MisdirectionCleared_PersistsZeroValues() {
	ctx := context.Background()

	routed := suite.routedCargo("ABC123")

	// Received in Hangzhou, off the itinerary.
	suite.handleEvent(routed, handling.Receive, location.Hangzhou, nil, suite.day(1))
	suite.tracker.On("TrackAggregate", routed.TrackingID(), routed).Once()
	suite.Require().NoError(suite.cargoRepository.Add(ctx, routed))

	retrieved, err := suite.cargoRepository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)
	suite.True(retrieved.Delivery().IsMisdirected())

	// A later on-route load puts the cargo back on track. The update must
	// write the flag back to false.
	suite.handleEvents(routed,
		suite.event(routed, handling.Receive, location.Shanghai, nil, suite.day(2)),
		suite.event(routed, handling.Load, location.Shanghai, &voyage.V300, suite.day(3)),
	)
	suite.tracker.On("TrackAggregate", routed.TrackingID(), routed).Once()
	suite.Require().NoError(suite.cargoRepository.Update(ctx, routed))

	retrieved, err = suite.cargoRepository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)
	suite.False(retrieved.Delivery().IsMisdirected())
	suite.Equal(cargo.OnboardCarrier, retrieved.Delivery().TransportStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_NonExistentCargo_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.bookedCargo("MISSING")

	err := suite.cargoRepository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "not found")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()

	booked := suite.bookedCargo("ABC123")
	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()
	suite.Require().NoError(suite.cargoRepository.Add(ctx, booked))

	exists, err := suite.cargoRepository.Exists(ctx, booked.TrackingID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.cargoRepository.Exists(ctx, suite.trackingID("MISSING"))
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGetAllUnderway_ExcludesClaimedCargos() {
	ctx := context.Background()

	underway := suite.routedCargo("UNDER1")
	suite.handleEvent(underway, handling.Receive, location.Shanghai, nil, suite.day(1))

	claimed := suite.routedCargo("CLAIM1")
	suite.handleEvents(claimed,
		suite.event(claimed, handling.Receive, location.Shanghai, nil, suite.day(1)),
		suite.event(claimed, handling.Load, location.Shanghai, &voyage.V300, suite.day(2)),
		suite.event(claimed, handling.Unload, location.Gothenburg, &voyage.V300, suite.day(12)),
		suite.event(claimed, handling.Claim, location.Gothenburg, nil, suite.day(13)),
	)

	for _, c := range []*cargo.Cargo{underway, claimed} {
		suite.tracker.On("TrackAggregate", c.TrackingID(), c).Once()
		suite.Require().NoError(suite.cargoRepository.Add(ctx, c))
	}

	underwayCargos, err := suite.cargoRepository.GetAllUnderway(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(underwayCargos, 1)
	suite.Equal("UNDER1", underwayCargos[0].TrackingID().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestNextTrackingID_IsUsableAndUnique() {
	ctx := context.Background()

	first, err := suite.cargoRepository.NextTrackingID(ctx)
	suite.Require().NoError(err)

	second, err := suite.cargoRepository.NextTrackingID(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(first.Validate())
	suite.Equal(strings.ToUpper(first.String()), first.String())
	suite.NotEqual(first.String(), second.String())
}

func (suite *CargoRepositoryIntegrationTestSuite) trackingID(id string) kernel.TrackingID {
	trackingID, err := kernel.NewTrackingID(id)
	suite.Require().NoError(err)
	return trackingID
}

func (suite *CargoRepositoryIntegrationTestSuite) day(n int) time.Time {
	return time.Date(2009, time.March, n, 12, 0, 0, 0, time.UTC)
}

// bookedCargo creates an unrouted cargo from Shanghai to Göteborg.
func (suite *CargoRepositoryIntegrationTestSuite) bookedCargo(id string) *cargo.Cargo {
	routeSpecification, err := cargo.NewRouteSpecification(
		location.Shanghai, location.Gothenburg, suite.day(20))
	suite.Require().NoError(err)

	booked, err := cargo.NewCargo(suite.trackingID(id), routeSpecification)
	suite.Require().NoError(err)

	return booked
}

// shanghaiToGothenburg builds the two-leg V300 itinerary satisfying the
// booked route specification.
func (suite *CargoRepositoryIntegrationTestSuite) shanghaiToGothenburg() cargo.Itinerary {
	firstLeg, err := cargo.NewLeg(
		voyage.V300, location.Shanghai, location.Rotterdam, suite.day(2), suite.day(8))
	suite.Require().NoError(err)

	secondLeg, err := cargo.NewLeg(
		voyage.V300, location.Rotterdam, location.Gothenburg, suite.day(9), suite.day(12))
	suite.Require().NoError(err)

	itinerary, err := cargo.NewItinerary([]cargo.Leg{firstLeg, secondLeg})
	suite.Require().NoError(err)

	return itinerary
}

func (suite *CargoRepositoryIntegrationTestSuite) routedCargo(id string) *cargo.Cargo {
	routed := suite.bookedCargo(id)
	suite.Require().NoError(routed.AssignToRoute(suite.shanghaiToGothenburg()))
	return routed
}

func (suite *CargoRepositoryIntegrationTestSuite) event(
	c *cargo.Cargo,
	eventType handling.EventType,
	at location.Location,
	onVoyage *voyage.Voyage,
	completionTime time.Time,
) handling.Event {
	event, err := handling.NewEvent(
		c.TrackingID(), eventType, at, onVoyage, completionTime, completionTime.Add(time.Hour))
	suite.Require().NoError(err)
	return event
}

func (suite *CargoRepositoryIntegrationTestSuite) handleEvent(
	c *cargo.Cargo,
	eventType handling.EventType,
	at location.Location,
	onVoyage *voyage.Voyage,
	completionTime time.Time,
) {
	suite.handleEvents(c, suite.event(c, eventType, at, onVoyage, completionTime))
}

func (suite *CargoRepositoryIntegrationTestSuite) handleEvents(c *cargo.Cargo, events ...handling.Event) {
	history, err := handling.NewHistory(events)
	suite.Require().NoError(err)
	suite.Require().NoError(c.DeriveDeliveryProgress(history))
}

// assertCargoCount verifies the number of cargos in the database.
func (suite *CargoRepositoryIntegrationTestSuite) assertCargoCount(expected int) {
	var count int64
	err := suite.db.Model(&cargorepo.CargoDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertLegCount verifies the number of leg rows in the database.
func (suite *CargoRepositoryIntegrationTestSuite) assertLegCount(expected int) {
	var count int64
	err := suite.db.Model(&cargorepo.LegDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCargoRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CargoRepositoryIntegrationTestSuite))
}
