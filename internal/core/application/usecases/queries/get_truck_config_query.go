package queries

import (
	"context"
	"errors"
	"strings"

	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/core/ports"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrGetTruckConfigQueryIsNotConstructed = errors.New(
	"GetTruckConfigQuery must be created via NewGetTruckConfigQuery constructor",
)

// GetTruckConfigQuery reads the resolved configuration of one vehicle.
type GetTruckConfigQuery struct {
	vehicleCode string
	guard       guard.ConstructorGuard
}

func NewGetTruckConfigQuery(vehicleCode string) (GetTruckConfigQuery, error) {
	vehicleCode = strings.TrimSpace(vehicleCode)
	if vehicleCode == "" {
		return GetTruckConfigQuery{}, errs.NewValueIsRequiredError("vehicle code")
	}
	return GetTruckConfigQuery{vehicleCode: vehicleCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckConfigQueryIsNotConstructed)
}

func (q GetTruckConfigQuery) VehicleCode() string {
	return q.vehicleCode
}

// GetTruckConfigQueryHandler returns the truck as the planner would see it.
type GetTruckConfigQueryHandler struct {
	trucks ports.TruckRepository
}

func NewGetTruckConfigQueryHandler(trucks ports.TruckRepository) GetTruckConfigQueryHandler {
	return GetTruckConfigQueryHandler{trucks: trucks}
}

// Handle returns errs.ErrObjectNotFound for unknown vehicles.
func (h GetTruckConfigQueryHandler) Handle(ctx context.Context, query GetTruckConfigQuery) (*truck.Truck, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.trucks.Get(ctx, query.VehicleCode())
}
