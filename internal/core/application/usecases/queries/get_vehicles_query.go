package queries

import (
	"errors"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery lists every vehicle. When a date is given each vehicle is
// flagged with whether it has orders that day.
type GetVehiclesQuery struct {
	date  *kernel.PlanDate
	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates the query. date may be nil.
func NewGetVehiclesQuery(date *kernel.PlanDate) (GetVehiclesQuery, error) {
	if date != nil {
		if err := date.Validate(); err != nil {
			return GetVehiclesQuery{}, err
		}
		d := *date
		date = &d
	}
	return GetVehiclesQuery{date: date, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// Date returns the day to check for orders, or nil.
func (q GetVehiclesQuery) Date() *kernel.PlanDate {
	return q.date
}

// GetVehiclesQueryResponse is one vehicle with its resolved configuration.
// HasOrders is always false when the query had no date.
type GetVehiclesQueryResponse struct {
	Truck     *truck.Truck
	HasOrders bool
}
