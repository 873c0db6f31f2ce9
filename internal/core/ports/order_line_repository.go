package ports

import (
	"context"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
)

// OrderLineRepository reads the delivery order lines assigned to vehicles.
type OrderLineRepository interface {
	// GetForVehicle returns the lines the vehicle delivers on date, ordered by
	// order and line number. No lines is not an error.
	GetForVehicle(ctx context.Context, vehicleCode string, date kernel.PlanDate) ([]cargo.OrderLine, error)

	// GetVehicleCodesWithOrders returns the distinct vehicle codes that have at
	// least one line on date, sorted.
	GetVehicleCodesWithOrders(ctx context.Context, date kernel.PlanDate) ([]string, error)
}
