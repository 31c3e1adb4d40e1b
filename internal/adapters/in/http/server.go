// Package http exposes the application's use cases over a REST API.
// It translates transport concerns into commands and queries and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/commands"
	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/queries"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/services"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createVehicleHandler         commands.CreateVehicleCommandHandler
	createDeliveryHandler        commands.CreateDeliveryCommandHandler
	assignDeliveryHandler        commands.AssignDeliveryCommandHandler
	confirmDeliveryHandler       commands.ConfirmDeliveryCommandHandler
	cancelDeliveryHandler        commands.CancelDeliveryCommandHandler
	reportDeliveryFailureHandler commands.ReportDeliveryFailureCommandHandler
	createRouteHandler           commands.CreateRouteCommandHandler
	recordLocationFixHandler     commands.RecordLocationFixCommandHandler

	getAvailableVehiclesHandler queries.GetAvailableVehiclesQueryHandler
	getActiveDeliveriesHandler  queries.GetActiveDeliveriesQueryHandler
	getCurrentLocationHandler   queries.GetCurrentLocationQueryHandler
	getLocationHistoryHandler   queries.GetLocationHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	reportDeliveryFailureHandler commands.ReportDeliveryFailureCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	recordLocationFixHandler commands.RecordLocationFixCommandHandler,
	getAvailableVehiclesHandler queries.GetAvailableVehiclesQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getCurrentLocationHandler queries.GetCurrentLocationQueryHandler,
	getLocationHistoryHandler queries.GetLocationHistoryQueryHandler,
) *Server {
	return &Server{
		createVehicleHandler:         createVehicleHandler,
		createDeliveryHandler:        createDeliveryHandler,
		assignDeliveryHandler:        assignDeliveryHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		cancelDeliveryHandler:        cancelDeliveryHandler,
		reportDeliveryFailureHandler: reportDeliveryFailureHandler,
		createRouteHandler:           createRouteHandler,
		recordLocationFixHandler:     recordLocationFixHandler,
		getAvailableVehiclesHandler:  getAvailableVehiclesHandler,
		getActiveDeliveriesHandler:   getActiveDeliveriesHandler,
		getCurrentLocationHandler:    getCurrentLocationHandler,
		getLocationHistoryHandler:    getLocationHistoryHandler,
	}
}

// RegisterRoutes binds all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/available", s.GetAvailableVehicles)
	api.POST("/vehicles/:vehicleId/locations", s.RecordLocationFix)
	api.GET("/vehicles/:vehicleId/locations/current", s.GetCurrentLocation)
	api.GET("/vehicles/:vehicleId/locations", s.GetLocationHistory)

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/deliveries/assignments", s.AssignDelivery)
	api.POST("/deliveries/:deliveryId/confirm", s.ConfirmDelivery)
	api.POST("/deliveries/:deliveryId/cancel", s.CancelDelivery)
	api.POST("/deliveries/:deliveryId/failure", s.ReportDeliveryFailure)
	api.POST("/deliveries/:deliveryId/route", s.CreateRoute)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewVehicleRequest is the body for vehicle registration. Latitude and
// longitude are optional; when both are present the starting position is
// recorded as the vehicle's first location fix.
type NewVehicleRequest struct {
	Plate     string   `json:"plate"`
	Model     string   `json:"model"`
	Capacity  int      `json:"capacity"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// VehicleResponse describes one vehicle in fleet listings.
type VehicleResponse struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
}

// NewDeliveryRequest is the body for delivery registration.
type NewDeliveryRequest struct {
	ProductID           string `json:"productId"`
	DistributionPointID string `json:"distributionPointId"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RouteSpecRequest describes a route to plan alongside an assignment.
type RouteSpecRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distanceKm"`
	EtaMinutes  int     `json:"etaMinutes"`
}

// AssignDeliveryRequest is the body for the assignment endpoint. DeliveryID
// is optional; when absent the oldest pending delivery is assigned.
type AssignDeliveryRequest struct {
	DeliveryID *string           `json:"deliveryId,omitempty"`
	Route      *RouteSpecRequest `json:"route,omitempty"`
}

// AssignDeliveryResponse describes a completed assignment.
type AssignDeliveryResponse struct {
	DeliveryID string  `json:"deliveryId"`
	VehicleID  string  `json:"vehicleId"`
	RouteID    *string `json:"routeId,omitempty"`
}

// DeliveryResponse describes one delivery in active listings.
type DeliveryResponse struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"productId"`
	DistributionPointID string    `json:"distributionPointId"`
	Status              string    `json:"status"`
	VehicleID           *string   `json:"vehicleId,omitempty"`
	RouteID             *string   `json:"routeId,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// LocationFixRequest is the body for recording a position observation.
type LocationFixRequest struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
}

// LocationResponse describes one recorded position.
type LocationResponse struct {
	VehicleID  string    `json:"vehicleId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var request NewVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.CreateVehicleCommand
	var err error
	if request.Latitude != nil && request.Longitude != nil {
		cmd, err = commands.NewCreateVehicleCommandWithLocation(
			request.Plate,
			request.Model,
			request.Capacity,
			*request.Latitude,
			*request.Longitude,
		)
	} else {
		cmd, err = commands.NewCreateVehicleCommand(request.Plate, request.Model, request.Capacity)
	}
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if err := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.VehicleID().String()})
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	query := queries.NewGetAvailableVehiclesQuery()

	vehicles, err := s.getAvailableVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = VehicleResponse{
			ID:       v.ID.String(),
			Plate:    v.Plate,
			Model:    v.Model,
			Capacity: v.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request NewDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	distributionPointID, err := kernel.UUIDFromString(request.DistributionPointID)
	if err != nil {
		return badRequest(ctx, "Invalid distribution point ID")
	}

	cmd, err := commands.NewCreateDeliveryCommand(productID, distributionPointID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DeliveryID().String()})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:                  d.ID.String(),
			ProductID:           d.ProductID.String(),
			DistributionPointID: d.DistributionPointID.String(),
			Status:              d.Status.String(),
			VehicleID:           uuidPtrToString(d.VehicleID),
			RouteID:             uuidPtrToString(d.RouteID),
			CreatedAt:           d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDelivery handles POST /api/v1/deliveries/assignments. The body may
// name a specific delivery; otherwise the oldest pending one is picked.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var request AssignDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var routeSpec *commands.RouteSpec
	if request.Route != nil {
		spec, err := commands.NewRouteSpec(
			request.Route.Origin,
			request.Route.Destination,
			request.Route.DistanceKm,
			request.Route.EtaMinutes,
		)
		if err != nil {
			return badRequest(ctx, "Invalid route data: "+err.Error())
		}
		routeSpec = &spec
	}

	var cmd commands.AssignDeliveryCommand
	if request.DeliveryID != nil {
		deliveryID, err := kernel.UUIDFromString(*request.DeliveryID)
		if err != nil {
			return badRequest(ctx, "Invalid delivery ID")
		}

		cmd, err = commands.NewAssignDeliveryCommand(deliveryID, routeSpec)
		if err != nil {
			return badRequest(ctx, "Invalid assignment data: "+err.Error())
		}
	} else {
		cmd = commands.NewAssignFirstPendingCommand()
	}

	result, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := AssignDeliveryResponse{
		DeliveryID: result.Delivery.ID().String(),
		VehicleID:  result.Vehicle.ID().String(),
	}
	if result.Route != nil {
		routeID := result.Route.ID().String()
		response.RouteID = &routeID
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmDelivery handles POST /api/v1/deliveries/:deliveryId/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:deliveryId/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportDeliveryFailure handles POST /api/v1/deliveries/:deliveryId/failure.
func (s *Server) ReportDeliveryFailure(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewReportDeliveryFailureCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.reportDeliveryFailureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRoute handles POST /api/v1/deliveries/:deliveryId/route.
func (s *Server) CreateRoute(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var request RouteSpecRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	routeSpec, err := commands.NewRouteSpec(
		request.Origin,
		request.Destination,
		request.DistanceKm,
		request.EtaMinutes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	cmd, err := commands.NewCreateRouteCommand(deliveryID, routeSpec)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	if err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RouteID().String()})
}

// RecordLocationFix handles POST /api/v1/vehicles/:vehicleId/locations.
func (s *Server) RecordLocationFix(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	var request LocationFixRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordLocationFixCommand(
		vehicleID,
		request.Latitude,
		request.Longitude,
		request.RecordedAt,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err := s.recordLocationFixHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCurrentLocation handles GET /api/v1/vehicles/:vehicleId/locations/current.
func (s *Server) GetCurrentLocation(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	query, err := queries.NewGetCurrentLocationQuery(vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	location, err := s.getCurrentLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LocationResponse{
		VehicleID:  location.VehicleID.String(),
		Latitude:   location.Point.Latitude(),
		Longitude:  location.Point.Longitude(),
		RecordedAt: location.RecordedAt,
	})
}

// GetLocationHistory handles GET /api/v1/vehicles/:vehicleId/locations.
// Requires "from" and "to" query parameters in RFC 3339 format.
func (s *Server) GetLocationHistory(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid 'from' timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid 'to' timestamp")
	}

	query, err := queries.NewGetLocationHistoryQuery(vehicleID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	history, err := s.getLocationHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]LocationResponse, len(history))
	for i, fix := range history {
		response[i] = LocationResponse{
			VehicleID:  fix.VehicleID.String(),
			Latitude:   fix.Point.Latitude(),
			Longitude:  fix.Point.Longitude(),
			RecordedAt: fix.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes. Unknown errors
// are reported as internal failures without leaking their details.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrNoPendingDelivery):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "No pending delivery to assign",
		})
	case errors.Is(err, services.ErrNoVehicleAvailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "No vehicle available for assignment",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
