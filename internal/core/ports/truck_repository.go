package ports

import (
	"context"

	"loadplanner/internal/core/domain/model/truck"
)

// TruckRepository loads vehicles together with their loadable interior.
//
// Implementations resolve missing data the same way for every caller: the
// payload falls back to truck.ResolvePayloadKg, the interior to
// truck.ResolveContainer and the tolerance to truck.DefaultTolerancePct.
type TruckRepository interface {
	// Get returns the vehicle with the given code or an errs.ObjectNotFoundError.
	Get(ctx context.Context, code string) (*truck.Truck, error)

	// GetAll returns every registered vehicle ordered by code.
	GetAll(ctx context.Context) ([]*truck.Truck, error)

	// UpdateInterior stores the measured interior and tolerance of the truck,
	// creating the configuration when the vehicle had none.
	UpdateInterior(ctx context.Context, t *truck.Truck) error
}
