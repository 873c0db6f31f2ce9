package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// BaseURL prefixes every planner operation.
const BaseURL = "/api/v1/warehouse"

// PlanLoadParams defines parameters for PlanLoad.
type PlanLoadParams struct {
	// XUserCode is recorded as the author of the plan.
	XUserCode *string
}

// DateParams selects a delivery day. Missing parts default to today.
type DateParams struct {
	Year  *int
	Month *int
	Day   *int
}

// GetLoadHistoryParams defines parameters for GetLoadHistory.
type GetLoadHistoryParams struct {
	VehicleCode *string
	Limit       *int
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Plan a truck from its orders for a day
	// (POST /load-plan)
	PlanLoad(ctx echo.Context, params PlanLoadParams) error
	// Plan hand-entered items on a truck
	// (POST /load-plan-manual)
	PlanManualLoad(ctx echo.Context) error
	// List vehicles with their resolved configuration
	// (GET /vehicles)
	GetVehicles(ctx echo.Context, params DateParams) error
	// Read a truck configuration
	// (GET /truck-config/{vehicleCode})
	GetTruckConfig(ctx echo.Context, vehicleCode string) error
	// Store a measured interior and tolerance
	// (PUT /truck-config/{vehicleCode})
	UpdateTruckConfig(ctx echo.Context, vehicleCode string) error
	// Read the packaging used for an article
	// (GET /article-dimensions/{code})
	GetArticleDimensions(ctx echo.Context, code string) error
	// Store the packaging of an article
	// (PUT /article-dimensions/{code})
	UpdateArticleDimensions(ctx echo.Context, code string) error
	// List the order lines loaded on a truck for a day
	// (GET /truck/{vehicleCode}/orders)
	GetTruckOrders(ctx echo.Context, vehicleCode string, params DateParams) error
	// List recorded plans, newest first
	// (GET /load-history)
	GetLoadHistory(ctx echo.Context, params GetLoadHistoryParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PlanLoad converts echo context to params.
func (w *ServerInterfaceWrapper) PlanLoad(ctx echo.Context) error {
	var params PlanLoadParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-Code")]; found {
		var xUserCode string
		if n := len(valueList); n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Expected one value for X-User-Code, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "X-User-Code", valueList[0], &xUserCode,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter X-User-Code: %s", err))
		}
		params.XUserCode = &xUserCode
	}

	return w.Handler.PlanLoad(ctx, params)
}

// PlanManualLoad converts echo context to params.
func (w *ServerInterfaceWrapper) PlanManualLoad(ctx echo.Context) error {
	return w.Handler.PlanManualLoad(ctx)
}

// GetVehicles converts echo context to params.
func (w *ServerInterfaceWrapper) GetVehicles(ctx echo.Context) error {
	params, err := bindDateParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetVehicles(ctx, params)
}

// GetTruckConfig converts echo context to params.
func (w *ServerInterfaceWrapper) GetTruckConfig(ctx echo.Context) error {
	vehicleCode, err := bindPathString(ctx, "vehicleCode")
	if err != nil {
		return err
	}
	return w.Handler.GetTruckConfig(ctx, vehicleCode)
}

// UpdateTruckConfig converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTruckConfig(ctx echo.Context) error {
	vehicleCode, err := bindPathString(ctx, "vehicleCode")
	if err != nil {
		return err
	}
	return w.Handler.UpdateTruckConfig(ctx, vehicleCode)
}

// GetArticleDimensions converts echo context to params.
func (w *ServerInterfaceWrapper) GetArticleDimensions(ctx echo.Context) error {
	code, err := bindPathString(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.GetArticleDimensions(ctx, code)
}

// UpdateArticleDimensions converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateArticleDimensions(ctx echo.Context) error {
	code, err := bindPathString(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.UpdateArticleDimensions(ctx, code)
}

// GetTruckOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetTruckOrders(ctx echo.Context) error {
	vehicleCode, err := bindPathString(ctx, "vehicleCode")
	if err != nil {
		return err
	}
	params, err := bindDateParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTruckOrders(ctx, vehicleCode, params)
}

// GetLoadHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetLoadHistory(ctx echo.Context) error {
	var params GetLoadHistoryParams

	err := runtime.BindQueryParameter("form", true, false, "vehicleCode", ctx.QueryParams(), &params.VehicleCode)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter vehicleCode: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetLoadHistory(ctx, params)
}

func bindPathString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

func bindDateParams(ctx echo.Context) (DateParams, error) {
	var params DateParams
	for name, dest := range map[string]**int{
		"year":  &params.Year,
		"month": &params.Month,
		"day":   &params.Day,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
			return DateParams{}, echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}
	return params, nil
}

// EchoRouter is the subset of echo used to register routes, so both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter under BaseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, BaseURL)
}

// RegisterHandlersWithBaseURL registers the routes with baseURL prepended.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/load-plan", wrapper.PlanLoad)
	router.POST(baseURL+"/load-plan-manual", wrapper.PlanManualLoad)
	router.GET(baseURL+"/vehicles", wrapper.GetVehicles)
	router.GET(baseURL+"/truck-config/:vehicleCode", wrapper.GetTruckConfig)
	router.PUT(baseURL+"/truck-config/:vehicleCode", wrapper.UpdateTruckConfig)
	router.GET(baseURL+"/article-dimensions/:code", wrapper.GetArticleDimensions)
	router.PUT(baseURL+"/article-dimensions/:code", wrapper.UpdateArticleDimensions)
	router.GET(baseURL+"/truck/:vehicleCode/orders", wrapper.GetTruckOrders)
	router.GET(baseURL+"/load-history", wrapper.GetLoadHistory)
}
