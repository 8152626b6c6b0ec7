package handlingrepo_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// HandlingEventRepositoryIntegrationTestSuite provides integration tests
// for HandlingEventRepository using PostgreSQL containers to verify
// database persistence behavior.
type HandlingEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	eventRepository *handlingrepo.GormHandlingEventRepository
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) SetupSuite() {
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
		&handlingrepo.HandlingEventDTO{},
	))
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE handling_events, carrier_movements, voyages").Error)
	suite.eventRepository = handlingrepo.NewGormHandlingEventRepository(suite.db)

	// Events reference voyages by number, the voyages table must hold them.
	voyages := voyagerepo.NewGormVoyageRepository(suite.db)
	for _, v := range voyage.Samples() {
		suite.Require().NoError(voyages.Add(context.Background(), v))
	}
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestAdd_ValidEvent_Success() {
	ctx := context.Background()

	event := suite.receiveEvent("ABC123", location.Shanghai, suite.day(1))

	err := suite.eventRepository.Add(ctx, event)
	suite.Require().NoError(err)

	suite.assertEventCount(1)
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestGetHistory_NoEvents_ReturnsEmptyHistory() {
	ctx := context.Background()

	trackingID := suite.trackingID("EMPTY1")

	history, err := suite.eventRepository.GetHistory(ctx, trackingID)
	suite.Require().NoError(err)

	suite.True(history.IsEmpty())
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestGetHistory_RestoresEventsOrderedByCompletionTime() {
	ctx := context.Background()

	trackingID := suite.trackingID("ABC123")

	// Register out of order, the history must come back ordered.
	load := suite.loadEvent("ABC123", location.Shanghai, voyage.V300, suite.day(2))
	receive := suite.receiveEvent("ABC123", location.Shanghai, suite.day(1))

	suite.Require().NoError(suite.eventRepository.Add(ctx, load))
	suite.Require().NoError(suite.eventRepository.Add(ctx, receive))

	history, err := suite.eventRepository.GetHistory(ctx, trackingID)
	suite.Require().NoError(err)

	events := history.DistinctEventsByCompletionTime()
	suite.Require().Len(events, 2)
	suite.Equal(handling.Receive, events[0].Type())
	suite.Equal(handling.Load, events[1].Type())
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestGetHistory_RehydratesVoyage() {
	ctx := context.Background()

	trackingID := suite.trackingID("ABC123")

	load := suite.loadEvent("ABC123", location.Shanghai, voyage.V300, suite.day(2))
	suite.Require().NoError(suite.eventRepository.Add(ctx, load))

	history, err := suite.eventRepository.GetHistory(ctx, trackingID)
	suite.Require().NoError(err)

	events := history.DistinctEventsByCompletionTime()
	suite.Require().Len(events, 1)
	suite.Require().True(events[0].HasVoyage())
	suite.Equal("V300", events[0].Voyage().VoyageNumber().String())

	movements := events[0].Voyage().Schedule().CarrierMovements()
	suite.Require().Len(movements, 2)
	suite.Equal("CNSHA", movements[0].DepartureLocation().UnLocode().String())
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestGetHistory_IgnoresOtherCargos() {
	ctx := context.Background()

	suite.Require().NoError(suite.eventRepository.Add(ctx,
		suite.receiveEvent("ABC123", location.Shanghai, suite.day(1))))
	suite.Require().NoError(suite.eventRepository.Add(ctx,
		suite.receiveEvent("XYZ789", location.HongKong, suite.day(1))))

	history, err := suite.eventRepository.GetHistory(ctx, suite.trackingID("ABC123"))
	suite.Require().NoError(err)

	events := history.DistinctEventsByCompletionTime()
	suite.Require().Len(events, 1)
	suite.Equal("CNSHA", events[0].Location().UnLocode().String())
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) TestGetHistory_DuplicateRegistrations_ReducedToDistinctEvents() {
	ctx := context.Background()

	trackingID := suite.trackingID("ABC123")

	// The same physical event reported twice, e.g. by a retrying integration.
	first := suite.receiveEvent("ABC123", location.Shanghai, suite.day(1))
	second := suite.receiveEvent("ABC123", location.Shanghai, suite.day(1))

	suite.Require().NoError(suite.eventRepository.Add(ctx, first))
	suite.Require().NoError(suite.eventRepository.Add(ctx, second))

	suite.assertEventCount(2)

	history, err := suite.eventRepository.GetHistory(ctx, trackingID)
	suite.Require().NoError(err)

	suite.Len(history.DistinctEventsByCompletionTime(), 1)
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) trackingID(id string) kernel.TrackingID {
	trackingID, err := kernel.NewTrackingID(id)
	suite.Require().NoError(err)
	return trackingID
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) day(n int) time.Time {
	return time.Date(2009, time.March, n, 12, 0, 0, 0, time.UTC)
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) receiveEvent(
	id string, at location.Location, completionTime time.Time,
) handling.Event {
	event, err := handling.NewEvent(
		suite.trackingID(id),
		handling.Receive,
		at,
		nil,
		completionTime,
		completionTime.Add(time.Hour),
	)
	suite.Require().NoError(err)
	return event
}

func (suite *HandlingEventRepositoryIntegrationTestSuite) loadEvent(
	id string, at location.Location, onVoyage voyage.Voyage, completionTime time.Time,
) handling.Event {
	event, err := handling.NewEvent(
		suite.trackingID(id),
		handling.Load,
		at,
		&onVoyage,
		completionTime,
		completionTime.Add(time.Hour),
	)
	suite.Require().NoError(err)
	return event
}

// assertEventCount verifies the number of handling events in the database.
func (suite *HandlingEventRepositoryIntegrationTestSuite) assertEventCount(expected int) {
	var count int64
	err := suite.db.Model(&handlingrepo.HandlingEventDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestHandlingEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HandlingEventRepositoryIntegrationTestSuite))
}
