package cmd

import (
	"log/slog"

	"cargotracker/internal/adapters/out/appevents"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/seed"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	applicationEvents *appevents.Dispatcher
	routingService    ports.RoutingService
	logger            *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		applicationEvents: appevents.NewDispatcher(logger),
		logger:            logger,
	}

	// The inspection handler raises its findings through the dispatcher,
	// and the dispatcher delegates cargo-was-handled notifications to the
	// inspection handler. Bind after both exist.
	root.applicationEvents.BindInspectHandler(root.CreateInspectCargoCommandHandler())

	routingService, err := routing.NewClient(config.RoutingServiceURL, &root.uowFactory)
	if err != nil {
		return nil, err
	}
	root.routingService = routingService

	return root, nil
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCargoToRouteCommandHandler() commands.AssignCargoToRouteCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCargoToRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDestinationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	var f commands.HandlingUoWFactory = FuncHandlingUoWFactory(func() commands.HandlingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f, c.applicationEvents)
}

func (c *CompositionRoot) CreateInspectCargoCommandHandler() commands.InspectCargoCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInspectCargoCommandHandler(f, c.applicationEvents)
}

func (c *CompositionRoot) CreateInspectUnderwayCargosCommandHandler() commands.InspectUnderwayCargosCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInspectUnderwayCargosCommandHandler(f, c.CreateInspectCargoCommandHandler())
}

func (c *CompositionRoot) CreateRequestPossibleRoutesCommandHandler() commands.RequestPossibleRoutesCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPossibleRoutesCommandHandler(f, c.routingService)
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnroutedCargosQueryHandler() queries.GetUnroutedCargosQueryHandler {
	return queries.NewGetUnroutedCargosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSampleDataLoader() *seed.Loader {
	return seed.NewLoader(&c.uowFactory, c.logger)
}

// UnitOfWorkFactory exposes the shared factory for adapters that resolve
// reference data themselves.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

// ApplicationEvents exposes the dispatcher so shutdown can drain in-flight
// inspections.
func (c *CompositionRoot) ApplicationEvents() *appevents.Dispatcher {
	return c.applicationEvents
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncHandlingUoWFactory func() commands.HandlingUoW

func (f FuncHandlingUoWFactory) Create() commands.HandlingUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}
