package commands

import (
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
)

// PlanResponse is the outcome of a plan command: the truck that was planned,
// the boxes fed to the packer and the packing result.
type PlanResponse struct {
	Truck        *truck.Truck
	Date         *kernel.PlanDate // nil for manual plans
	TolerancePct float64
	Boxes        []cargo.Box
	Result       plan.Result
}
