package commands

import (
	"errors"
	"math"
	"strings"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrUpdateArticleDimensionsCommandIsNotConstructed = errors.New(
	"UpdateArticleDimensionsCommand must be created via NewUpdateArticleDimensionsCommand constructor",
)

// UpdateArticleDimensionsCommand records the packaging of an article. The
// article does not need to exist yet.
//
// Example:
//
//	cmd, err := NewUpdateArticleDimensionsCommand("OIL5L", "", 60, 40, 30, 18, 4)
//	if err != nil {
//	    return err
//	}
//	article, err := handler.Handle(ctx, cmd)
type UpdateArticleDimensionsCommand struct { //nolint:recvcheck //using for validation
	code        string
	name        string
	box         kernel.Dimensions
	weightKg    float64
	unitsPerBox int

	guard guard.ConstructorGuard
}

// NewUpdateArticleDimensionsCommand validates the box sides (length, width,
// height in centimetres) and the box weight. A blank name keeps the stored
// one; unitsPerBox below 1 keeps the stored count.
func NewUpdateArticleDimensionsCommand(
	code string,
	name string,
	lengthCm, widthCm, heightCm float64,
	weightKg float64,
	unitsPerBox int,
) (UpdateArticleDimensionsCommand, error) {
	command := UpdateArticleDimensionsCommand{
		name:        strings.TrimSpace(name),
		unitsPerBox: unitsPerBox,
		guard:       guard.NewConstructorGuard(),
	}

	box, boxErr := kernel.NewDimensions(lengthCm, widthCm, heightCm)
	if boxErr == nil {
		command.box = box
	}

	if err := errors.Join(
		command.setCode(code),
		boxErr,
		command.setWeight(weightKg),
	); err != nil {
		return UpdateArticleDimensionsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateArticleDimensionsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateArticleDimensionsCommandIsNotConstructed)
}

func (c UpdateArticleDimensionsCommand) Code() string { return c.code }

func (c UpdateArticleDimensionsCommand) Name() string { return c.name }

func (c UpdateArticleDimensionsCommand) Box() kernel.Dimensions { return c.box }

func (c UpdateArticleDimensionsCommand) WeightKg() float64 { return c.weightKg }

func (c UpdateArticleDimensionsCommand) UnitsPerBox() int { return c.unitsPerBox }

func (c *UpdateArticleDimensionsCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("article code")
	}

	c.code = code
	return nil
}

func (c *UpdateArticleDimensionsCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, "0 (exclusive)", math.Inf(1))
	}

	c.weightKg = weightKg
	return nil
}
