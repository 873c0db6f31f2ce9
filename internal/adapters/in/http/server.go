// Package http exposes the planner over REST. Routes are declared in
// api/openapi.yaml; requests are validated against that document before
// they reach the Server.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/application/usecases/queries"
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"

	"github.com/labstack/echo/v4"
)

// Use case handlers the server delegates to.
type (
	PlanLoadHandler interface {
		Handle(ctx context.Context, command commands.PlanLoadCommand) (commands.PlanResponse, error)
	}
	PlanManualLoadHandler interface {
		Handle(ctx context.Context, command commands.PlanManualLoadCommand) (commands.PlanResponse, error)
	}
	UpdateTruckConfigHandler interface {
		Handle(ctx context.Context, command commands.UpdateTruckConfigCommand) (*truck.Truck, error)
	}
	UpdateArticleDimensionsHandler interface {
		Handle(ctx context.Context, command commands.UpdateArticleDimensionsCommand) (cargo.Article, error)
	}
	GetVehiclesHandler interface {
		Handle(ctx context.Context, query queries.GetVehiclesQuery) ([]queries.GetVehiclesQueryResponse, error)
	}
	GetTruckConfigHandler interface {
		Handle(ctx context.Context, query queries.GetTruckConfigQuery) (*truck.Truck, error)
	}
	GetArticleDimensionsHandler interface {
		Handle(ctx context.Context, query queries.GetArticleDimensionsQuery) (cargo.Article, error)
	}
	GetTruckOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetTruckOrdersQuery) ([]queries.GetTruckOrdersQueryResponse, error)
	}
	GetLoadHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetLoadHistoryQuery) ([]queries.GetLoadHistoryQueryResponse, error)
	}
)

// Handlers groups every use case the server needs.
type Handlers struct {
	// Command handlers
	PlanLoad                PlanLoadHandler
	PlanManualLoad          PlanManualLoadHandler
	UpdateTruckConfig       UpdateTruckConfigHandler
	UpdateArticleDimensions UpdateArticleDimensionsHandler

	// Query handlers
	GetVehicles          GetVehiclesHandler
	GetTruckConfig       GetTruckConfigHandler
	GetArticleDimensions GetArticleDimensionsHandler
	GetTruckOrders       GetTruckOrdersHandler
	GetLoadHistory       GetLoadHistoryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a server. A nil logger means slog.Default().
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
		now:      time.Now,
	}
}

// PlanLoad handles POST /load-plan.
func (s *Server) PlanLoad(ctx echo.Context, params PlanLoadParams) error {
	var body LoadPlanRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	date, err := resolveDate(body.Year, body.Month, body.Day, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	var requestedBy string
	if params.XUserCode != nil {
		requestedBy = *params.XUserCode
	}

	cmd, err := commands.NewPlanLoadCommand(body.VehicleCode, date, body.Tolerance, requestedBy)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.PlanLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromPlanResponse(resp))
}

// PlanManualLoad handles POST /load-plan-manual.
func (s *Server) PlanManualLoad(ctx echo.Context) error {
	var body ManualLoadPlanRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlanManualLoadCommand(body.VehicleCode, toManualItems(body.Items), body.Tolerance)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.PlanManualLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromPlanResponse(resp))
}

// GetVehicles handles GET /vehicles. HasOrders is only reported when the
// request names a day.
func (s *Server) GetVehicles(ctx echo.Context, params DateParams) error {
	var date *kernel.PlanDate
	if params.Year != nil || params.Month != nil || params.Day != nil {
		d, err := resolveDate(params.Year, params.Month, params.Day, s.now())
		if err != nil {
			return s.fail(ctx, err)
		}
		date = &d
	}

	query, err := queries.NewGetVehiclesQuery(date)
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicles, err := s.handlers.GetVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromVehicles(vehicles))
}

// GetTruckConfig handles GET /truck-config/{vehicleCode}.
func (s *Server) GetTruckConfig(ctx echo.Context, vehicleCode string) error {
	query, err := queries.NewGetTruckConfigQuery(vehicleCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.GetTruckConfig.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromTruck(t))
}

// UpdateTruckConfig handles PUT /truck-config/{vehicleCode}. A missing
// tolerance resets it to truck.DefaultTolerancePct.
func (s *Server) UpdateTruckConfig(ctx echo.Context, vehicleCode string) error {
	var body TruckConfigUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	tolerance := truck.DefaultTolerancePct
	if body.TolerancePct != nil {
		tolerance = *body.TolerancePct
	}

	cmd, err := commands.NewUpdateTruckConfigCommand(vehicleCode, body.LengthCm, body.WidthCm, body.HeightCm, tolerance)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.UpdateTruckConfig.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromTruck(t))
}

// GetArticleDimensions handles GET /article-dimensions/{code}.
func (s *Server) GetArticleDimensions(ctx echo.Context, code string) error {
	query, err := queries.NewGetArticleDimensionsQuery(code)
	if err != nil {
		return s.fail(ctx, err)
	}

	article, err := s.handlers.GetArticleDimensions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromArticle(article))
}

// UpdateArticleDimensions handles PUT /article-dimensions/{code}.
func (s *Server) UpdateArticleDimensions(ctx echo.Context, code string) error {
	var body ArticleDimensionsUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateArticleDimensionsCommand(
		code, body.Name, body.LengthCm, body.WidthCm, body.HeightCm, body.WeightKg, body.UnitsPerBox,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	article, err := s.handlers.UpdateArticleDimensions.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromArticle(article))
}

// GetTruckOrders handles GET /truck/{vehicleCode}/orders.
func (s *Server) GetTruckOrders(ctx echo.Context, vehicleCode string, params DateParams) error {
	date, err := resolveDate(params.Year, params.Month, params.Day, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetTruckOrdersQuery(vehicleCode, date)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines, err := s.handlers.GetTruckOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromTruckOrders(query.VehicleCode(), date, lines))
}

// GetLoadHistory handles GET /load-history.
func (s *Server) GetLoadHistory(ctx echo.Context, params GetLoadHistoryParams) error {
	var vehicleCode string
	if params.VehicleCode != nil {
		vehicleCode = *params.VehicleCode
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	entries, err := s.handlers.GetLoadHistory.Handle(ctx.Request().Context(),
		queries.NewGetLoadHistoryQuery(vehicleCode, limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromLoadHistory(entries))
}

// resolveDate fills each missing or zero part of the date from today.
func resolveDate(year, month, day *int, today time.Time) (kernel.PlanDate, error) {
	y, m, d := today.Date()
	pick := func(v *int, fallback int) int {
		if v == nil || *v == 0 {
			return fallback
		}
		return *v
	}
	return kernel.NewPlanDate(pick(year, y), pick(month, int(m)), pick(day, d))
}
