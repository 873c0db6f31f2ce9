package commands

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrPlanManualLoadCommandIsNotConstructed = errors.New(
	"PlanManualLoadCommand must be created via NewPlanManualLoadCommand constructor",
)

// PlanManualLoadCommand asks for a what-if plan of hand-entered items on a
// vehicle. Nothing is persisted.
type PlanManualLoadCommand struct { //nolint:recvcheck //using for validation
	vehicleCode  string
	items        []cargo.ManualItem
	tolerancePct *float64

	guard guard.ConstructorGuard
}

// NewPlanManualLoadCommand validates and creates the command.
//
// Each item needs an article code or all three explicit sides. Explicit
// sides and weight must not be negative.
func NewPlanManualLoadCommand(
	vehicleCode string,
	items []cargo.ManualItem,
	tolerancePct *float64,
) (PlanManualLoadCommand, error) {
	command := PlanManualLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleCode(vehicleCode),
		command.setItems(items),
		command.setTolerance(tolerancePct),
	); err != nil {
		return PlanManualLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanManualLoadCommand) Validate() error {
	return c.guard.Validate(ErrPlanManualLoadCommandIsNotConstructed)
}

func (c PlanManualLoadCommand) VehicleCode() string { return c.vehicleCode }

// Items returns a copy of the items.
func (c PlanManualLoadCommand) Items() []cargo.ManualItem { return slices.Clone(c.items) }

func (c PlanManualLoadCommand) TolerancePct() *float64 { return c.tolerancePct }

func (c *PlanManualLoadCommand) setVehicleCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("vehicle code")
	}

	c.vehicleCode = code
	return nil
}

func (c *PlanManualLoadCommand) setItems(items []cargo.ManualItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	var errList []error
	for i, item := range items {
		if err := validateManualItem(item); err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = slices.Clone(items)
	return nil
}

func (c *PlanManualLoadCommand) setTolerance(tolerancePct *float64) error {
	if err := validateToleranceOverride(tolerancePct); err != nil {
		return err
	}

	c.tolerancePct = tolerancePct
	return nil
}

func validateManualItem(item cargo.ManualItem) error {
	var errList []error
	if strings.TrimSpace(item.ArticleCode) == "" && !item.HasDimensions() {
		errList = append(errList, errs.NewValueIsRequiredError("article code or dimensions"))
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"length", item.LengthCm},
		{"width", item.WidthCm},
		{"height", item.HeightCm},
		{"weight", item.WeightKg},
		{"quantity", item.Quantity},
	} {
		if field.value < 0 || math.IsNaN(field.value) {
			errList = append(errList, errs.NewValueIsOutOfRangeError(field.name, field.value, 0, math.Inf(1)))
		}
	}
	return errors.Join(errList...)
}
