package http

import (
	"context"
	"errors"
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/generated/servers"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	bookCargoHandler             commands.BookCargoCommandHandler
	assignRouteHandler           commands.AssignCargoToRouteCommandHandler
	changeDestinationHandler     commands.ChangeDestinationCommandHandler
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler
	requestPossibleRoutesHandler commands.RequestPossibleRoutesCommandHandler

	// Query handlers
	trackCargoHandler        queries.TrackCargoQueryHandler
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler

	// Route assignments arrive as voyage numbers and locodes; the unit of
	// work provides the repositories to rehydrate them into an itinerary.
	uowFactory ports.UnitOfWorkFactory
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	assignRouteHandler commands.AssignCargoToRouteCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler,
	requestPossibleRoutesHandler commands.RequestPossibleRoutesCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
) *Server {
	return &Server{
		bookCargoHandler:             bookCargoHandler,
		assignRouteHandler:           assignRouteHandler,
		changeDestinationHandler:     changeDestinationHandler,
		registerHandlingEventHandler: registerHandlingEventHandler,
		requestPossibleRoutesHandler: requestPossibleRoutesHandler,
		trackCargoHandler:            trackCargoHandler,
		getUnroutedCargosHandler:     getUnroutedCargosHandler,
		uowFactory:                   uowFactory,
	}
}

// BookCargo handles POST /api/v1/cargos - books a new cargo.
func (s *Server) BookCargo(ctx echo.Context) error {
	var newCargo servers.NewCargo
	if err := ctx.Bind(&newCargo); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	origin, err := kernel.NewUnLocode(newCargo.OriginUnLocode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid origin: " + err.Error(),
		})
	}
	destination, err := kernel.NewUnLocode(newCargo.DestinationUnLocode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destination: " + err.Error(),
		})
	}

	cmd, err := commands.NewBookCargoCommand(origin, destination, newCargo.ArrivalDeadline)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking data: " + err.Error(),
		})
	}

	trackingID, err := s.bookCargoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to book cargo",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.CargoBooked{
		TrackingId: trackingID.String(),
	})
}

// ListUnroutedCargos handles GET /api/v1/cargos/unrouted - retrieves
// booked cargos that still need a route.
func (s *Server) ListUnroutedCargos(ctx echo.Context) error {
	query := queries.NewGetUnroutedCargosQuery()

	cargos, err := s.getUnroutedCargosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unrouted cargos",
		})
	}

	response := make([]servers.UnroutedCargo, len(cargos))
	for i, unrouted := range cargos {
		response[i] = servers.UnroutedCargo{
			TrackingId:      unrouted.TrackingID,
			Origin:          unrouted.Origin,
			Destination:     unrouted.Destination,
			ArrivalDeadline: unrouted.ArrivalDeadline,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackCargo handles GET /api/v1/cargos/{trackingId} - retrieves the
// tracking view of a cargo.
func (s *Server) TrackCargo(ctx echo.Context, trackingId string) error {
	query, err := queries.NewTrackCargoQuery(trackingId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track cargo",
		})
	}

	return ctx.JSON(http.StatusOK, toTrackingInfo(view))
}

// ChangeCargoDestination handles PUT /api/v1/cargos/{trackingId}/destination.
func (s *Server) ChangeCargoDestination(ctx echo.Context, trackingId string) error {
	var newDestination servers.NewDestination
	if err := ctx.Bind(&newDestination); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	trackingID, err := kernel.NewTrackingID(trackingId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}
	destination, err := kernel.NewUnLocode(newDestination.DestinationUnLocode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destination: " + err.Error(),
		})
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destination change: " + err.Error(),
		})
	}

	if handleErr := s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change destination",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRouteToCargo handles POST /api/v1/cargos/{trackingId}/route -
// attaches a chosen itinerary to a booked cargo.
func (s *Server) AssignRouteToCargo(ctx echo.Context, trackingId string) error {
	var candidate servers.RouteCandidate
	if err := ctx.Bind(&candidate); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	trackingID, err := kernel.NewTrackingID(trackingId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	itinerary, err := s.toItinerary(ctx.Request().Context(), candidate)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown voyage or location: " + err.Error(),
			})
		}
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid itinerary: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, itinerary)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid itinerary: " + err.Error(),
		})
	}

	if handleErr := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign route",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestPossibleRoutes handles GET /api/v1/cargos/{trackingId}/routes -
// asks the routing service for itineraries matching the cargo's route
// specification.
func (s *Server) RequestPossibleRoutes(ctx echo.Context, trackingId string) error {
	trackingID, err := kernel.NewTrackingID(trackingId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}

	cmd, err := commands.NewRequestPossibleRoutesCommand(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid route request: " + err.Error(),
		})
	}

	itineraries, err := s.requestPossibleRoutesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to fetch route candidates",
		})
	}

	response := make([]servers.RouteCandidate, len(itineraries))
	for i, itinerary := range itineraries {
		response[i] = toRouteCandidate(itinerary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterHandlingEvent handles POST /api/v1/handling-events - registers a
// handling report from the field.
func (s *Server) RegisterHandlingEvent(ctx echo.Context) error {
	var report servers.NewHandlingEvent
	if err := ctx.Bind(&report); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	trackingID, err := kernel.NewTrackingID(report.TrackingId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id: " + err.Error(),
		})
	}
	eventType, err := handling.EventTypeFromString(string(report.EventType))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event type: " + err.Error(),
		})
	}
	unLocode, err := kernel.NewUnLocode(report.UnLocode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid locode: " + err.Error(),
		})
	}

	var voyageNumber *kernel.VoyageNumber
	if report.VoyageNumber != nil && *report.VoyageNumber != "" {
		number, numberErr := kernel.NewVoyageNumber(*report.VoyageNumber)
		if numberErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid voyage number: " + numberErr.Error(),
			})
		}
		voyageNumber = &number
	}

	cmd, err := commands.NewRegisterHandlingEventCommand(
		report.CompletionTime, trackingID, voyageNumber, unLocode, eventType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid handling report: " + err.Error(),
		})
	}

	if handleErr := s.registerHandlingEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id, location or voyage: " + handleErr.Error(),
			})
		}
		var invalid *errs.ValueIsInvalidError
		if errors.As(handleErr, &invalid) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid handling report: " + handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register handling event",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// toItinerary rehydrates a route candidate payload into a domain
// itinerary, resolving voyages and locations through the repositories.
func (s *Server) toItinerary(
	ctx context.Context,
	candidate servers.RouteCandidate,
) (cargo.Itinerary, error) {
	uow := s.uowFactory.Create()
	voyages := uow.VoyageRepository()
	locations := uow.LocationRepository()

	legs := make([]cargo.Leg, 0, len(candidate.Legs))
	for _, candidateLeg := range candidate.Legs {
		voyageNumber, err := kernel.NewVoyageNumber(candidateLeg.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legVoyage, err := voyages.Get(ctx, voyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		loadUnLocode, err := kernel.NewUnLocode(candidateLeg.LoadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		loadLocation, err := locations.Get(ctx, loadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		unloadUnLocode, err := kernel.NewUnLocode(candidateLeg.UnloadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unloadLocation, err := locations.Get(ctx, unloadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		leg, err := cargo.NewLeg(
			legVoyage, loadLocation, unloadLocation,
			candidateLeg.LoadTime, candidateLeg.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func toRouteCandidate(itinerary cargo.Itinerary) servers.RouteCandidate {
	legs := make([]servers.Leg, len(itinerary.Legs()))
	for i, leg := range itinerary.Legs() {
		legs[i] = servers.Leg{
			VoyageNumber:   leg.Voyage().VoyageNumber().String(),
			LoadLocation:   leg.LoadLocation().UnLocode().String(),
			UnloadLocation: leg.UnloadLocation().UnLocode().String(),
			LoadTime:       leg.LoadTime(),
			UnloadTime:     leg.UnloadTime(),
		}
	}
	return servers.RouteCandidate{Legs: legs}
}

func toTrackingInfo(view queries.TrackCargoQueryResponse) servers.TrackingInfo {
	events := make([]servers.HandlingEvent, len(view.HandlingEvents))
	for i, event := range view.HandlingEvents {
		events[i] = servers.HandlingEvent{
			EventType:      event.EventType,
			Location:       event.Location,
			CompletionTime: event.CompletionTime,
		}
		if event.VoyageNumber != "" {
			voyageNumber := event.VoyageNumber
			events[i].VoyageNumber = &voyageNumber
		}
	}

	info := servers.TrackingInfo{
		TrackingId:            view.TrackingID,
		TransportStatus:       view.TransportStatus,
		RoutingStatus:         view.RoutingStatus,
		Misdirected:           view.IsMisdirected,
		UnloadedAtDestination: view.UnloadedAtDestination,
		Eta:                   view.Eta,
		HandlingEvents:        events,
	}
	if view.LastKnownLocation != "" {
		lastKnown := view.LastKnownLocation
		info.LastKnownLocation = &lastKnown
	}
	if view.CurrentVoyage != "" {
		currentVoyage := view.CurrentVoyage
		info.CurrentVoyage = &currentVoyage
	}
	if view.NextExpectedActivity != "" {
		nextActivity := view.NextExpectedActivity
		info.NextExpectedActivity = &nextActivity
	}

	return info
}
