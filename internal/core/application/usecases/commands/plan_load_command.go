package commands

import (
	"errors"
	"math"
	"strings"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrPlanLoadCommandIsNotConstructed = errors.New(
	"PlanLoadCommand must be created via NewPlanLoadCommand constructor",
)

// PlanLoadCommand asks for the load plan of one vehicle on one delivery date.
//
// Example:
//
//	date, _ := kernel.NewPlanDate(2025, 3, 14)
//	cmd, err := NewPlanLoadCommand("V042", date, nil, "warehouse")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, cmd)
type PlanLoadCommand struct { //nolint:recvcheck //using for validation
	vehicleCode  string
	date         kernel.PlanDate
	tolerancePct *float64
	requestedBy  string

	guard guard.ConstructorGuard
}

// NewPlanLoadCommand creates a plan command. tolerancePct overrides the
// truck's configured tolerance when not nil. A blank requestedBy is recorded
// as the system user.
func NewPlanLoadCommand(
	vehicleCode string,
	date kernel.PlanDate,
	tolerancePct *float64,
	requestedBy string,
) (PlanLoadCommand, error) {
	command := PlanLoadCommand{
		requestedBy: strings.TrimSpace(requestedBy),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleCode(vehicleCode),
		command.setDate(date),
		command.setTolerance(tolerancePct),
	); err != nil {
		return PlanLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanLoadCommand) Validate() error {
	return c.guard.Validate(ErrPlanLoadCommandIsNotConstructed)
}

func (c PlanLoadCommand) VehicleCode() string { return c.vehicleCode }

func (c PlanLoadCommand) Date() kernel.PlanDate { return c.date }

// TolerancePct returns the override, nil when the truck's own tolerance applies.
func (c PlanLoadCommand) TolerancePct() *float64 { return c.tolerancePct }

func (c PlanLoadCommand) RequestedBy() string { return c.requestedBy }

func (c *PlanLoadCommand) setVehicleCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("vehicle code")
	}

	c.vehicleCode = code
	return nil
}

func (c *PlanLoadCommand) setDate(date kernel.PlanDate) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *PlanLoadCommand) setTolerance(tolerancePct *float64) error {
	if err := validateToleranceOverride(tolerancePct); err != nil {
		return err
	}

	c.tolerancePct = tolerancePct
	return nil
}

func validateToleranceOverride(tolerancePct *float64) error {
	if tolerancePct == nil {
		return nil
	}
	v := *tolerancePct
	if math.IsNaN(v) || v < 0 || v > truck.MaxTolerancePct {
		return errs.NewValueIsOutOfRangeError("tolerance", v, 0, truck.MaxTolerancePct)
	}
	return nil
}
