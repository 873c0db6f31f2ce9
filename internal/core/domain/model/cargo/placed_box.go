package cargo

import (
	"errors"
	"fmt"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// ErrPlacedBoxIsNotConstructed is returned when a zero-value PlacedBox is used.
var ErrPlacedBoxIsNotConstructed = errs.NewValueIsRequiredError("placed box must be created via NewPlacedBox")

// PlacedBox is a Box at a fixed corner position in a chosen orientation.
//
// The orientation is always one of the six rotations of the box size, so
// volume is preserved.
type PlacedBox struct {
	box      Box
	position kernel.Point
	size     kernel.Dimensions
	guard    guard.ConstructorGuard
}

// NewPlacedBox validates and creates a PlacedBox.
//
// Returns an error when any part is not constructed or when size is not a
// rotation of the box dimensions.
func NewPlacedBox(box Box, position kernel.Point, size kernel.Dimensions) (PlacedBox, error) {
	if err := errors.Join(box.Validate(), position.Validate(), size.Validate()); err != nil {
		return PlacedBox{}, err
	}
	if !size.IsRotationOf(box.Size()) {
		return PlacedBox{}, errs.NewValueIsInvalidErrorWithCause(
			"orientation",
			fmt.Errorf("%s is not a rotation of %s", size, box.Size()),
		)
	}

	return PlacedBox{
		box:      box,
		position: position,
		size:     size,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the value was built by NewPlacedBox.
func (p PlacedBox) Validate() error {
	return p.guard.Validate(ErrPlacedBoxIsNotConstructed)
}

// Box returns the box that was placed.
func (p PlacedBox) Box() Box {
	return p.box
}

// Position returns the corner closest to the container origin.
func (p PlacedBox) Position() kernel.Point {
	return p.position
}

// Size returns the rotated dimensions as placed.
func (p PlacedBox) Size() kernel.Dimensions {
	return p.size
}

// Volume returns the occupied volume.
func (p PlacedBox) Volume() float64 {
	return p.size.Volume()
}

// MaxX returns the far edge along the container width.
func (p PlacedBox) MaxX() float64 { return p.position.X() + p.size.Width() }

// MaxY returns the far edge along the container length.
func (p PlacedBox) MaxY() float64 { return p.position.Y() + p.size.Depth() }

// MaxZ returns the top face height.
func (p PlacedBox) MaxZ() float64 { return p.position.Z() + p.size.Height() }

// Overlaps reports whether the interiors of p and other intersect.
// Boxes that only share a face do not overlap.
func (p PlacedBox) Overlaps(other PlacedBox) bool {
	return p.position.X() < other.MaxX()-kernel.Epsilon && other.position.X() < p.MaxX()-kernel.Epsilon &&
		p.position.Y() < other.MaxY()-kernel.Epsilon && other.position.Y() < p.MaxY()-kernel.Epsilon &&
		p.position.Z() < other.MaxZ()-kernel.Epsilon && other.position.Z() < p.MaxZ()-kernel.Epsilon
}
