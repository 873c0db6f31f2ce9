package kernel

import (
	"errors"
	"fmt"
	"math"

	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// ErrPointIsNotConstructed is returned when a zero-value Point is used.
var ErrPointIsNotConstructed = errs.NewValueIsRequiredError("point must be created via NewPoint")

// Point is a corner position inside a container, in centimetres from the
// origin (front-left-bottom corner). Coordinates are never negative.
type Point struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	z     float64
	guard guard.ConstructorGuard
}

// NewPoint creates a Point. Each coordinate must be finite and >= 0.
func NewPoint(x, y, z float64) (Point, error) {
	p := Point{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateCoordinate("x", x),
		validateCoordinate("y", y),
		validateCoordinate("z", z),
	); err != nil {
		return Point{}, err
	}

	p.x, p.y, p.z = x, y, z
	return p, nil
}

// Validate reports whether the value was built by NewPoint.
func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

// X returns the offset along the container width.
func (p Point) X() float64 { return p.x }

// Y returns the offset along the container length.
func (p Point) Y() float64 { return p.y }

// Z returns the offset from the floor.
func (p Point) Z() float64 { return p.z }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.x, p.y, p.z)
}

func validateCoordinate(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.Inf(1))
	}
	return nil
}
