package commands

import (
	"errors"
	"strings"

	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrUpdateTruckConfigCommandIsNotConstructed = errors.New(
	"UpdateTruckConfigCommand must be created via NewUpdateTruckConfigCommand constructor",
)

// UpdateTruckConfigCommand records a measured interior and a tolerance for a
// vehicle, replacing any volume-based estimate.
type UpdateTruckConfigCommand struct { //nolint:recvcheck //using for validation
	vehicleCode  string
	container    truck.Container
	tolerancePct float64

	guard guard.ConstructorGuard
}

// NewUpdateTruckConfigCommand validates the interior sides in centimetres and
// the tolerance percentage.
func NewUpdateTruckConfigCommand(
	vehicleCode string,
	lengthCm, widthCm, heightCm float64,
	tolerancePct float64,
) (UpdateTruckConfigCommand, error) {
	command := UpdateTruckConfigCommand{
		guard: guard.NewConstructorGuard(),
	}

	container, containerErr := truck.NewContainer(lengthCm, widthCm, heightCm)
	if containerErr == nil {
		command.container = container
	}

	if err := errors.Join(
		command.setVehicleCode(vehicleCode),
		containerErr,
		command.setTolerance(tolerancePct),
	); err != nil {
		return UpdateTruckConfigCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTruckConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTruckConfigCommandIsNotConstructed)
}

func (c UpdateTruckConfigCommand) VehicleCode() string { return c.vehicleCode }

func (c UpdateTruckConfigCommand) Container() truck.Container { return c.container }

func (c UpdateTruckConfigCommand) TolerancePct() float64 { return c.tolerancePct }

func (c *UpdateTruckConfigCommand) setVehicleCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("vehicle code")
	}

	c.vehicleCode = code
	return nil
}

func (c *UpdateTruckConfigCommand) setTolerance(tolerancePct float64) error {
	if err := validateToleranceOverride(&tolerancePct); err != nil {
		return err
	}

	c.tolerancePct = tolerancePct
	return nil
}
