package kernel

import (
	"errors"
	"fmt"
	"math"

	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// Epsilon is the tolerance, in centimetres, used for every floating point
// comparison between lengths in the load planning domain.
const Epsilon = 1e-6

// ErrDimensionsIsNotConstructed is returned when a zero-value Dimensions is used.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions")

// Dimensions is an immutable axis-aligned extent measured in centimetres.
//
// Width runs along the X axis (container width), Depth along the Y axis
// (container length) and Height along the Z axis. All three are strictly positive
// for a constructed value.
//
// Example:
//
//	size, err := kernel.NewDimensions(40, 30, 25)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(size.Volume()) // 30000
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	depth  float64
	height float64
	guard  guard.ConstructorGuard
}

// NewDimensions creates a Dimensions value.
//
// Parameters:
//   - width: extent along X, must be > 0 and finite
//   - depth: extent along Y, must be > 0 and finite
//   - height: extent along Z, must be > 0 and finite
//
// Returns:
//   - Dimensions: the constructed value
//   - error: joined validation errors for every offending side
func NewDimensions(width, depth, height float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setWidth(width),
		d.setDepth(depth),
		d.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// MustDimensions is NewDimensions for literals known to be valid. It panics on error.
func MustDimensions(width, depth, height float64) Dimensions {
	d, err := NewDimensions(width, depth, height)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate reports whether the value was built by NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

// Width returns the extent along X.
func (d Dimensions) Width() float64 {
	return d.width
}

// Depth returns the extent along Y.
func (d Dimensions) Depth() float64 {
	return d.depth
}

// Height returns the extent along Z.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns width × depth × height in cubic centimetres.
func (d Dimensions) Volume() float64 {
	return d.width * d.depth * d.height
}

// Footprint returns the floor area width × depth in square centimetres.
func (d Dimensions) Footprint() float64 {
	return d.width * d.depth
}

// FitsWithin reports whether d fits inside other without rotation.
func (d Dimensions) FitsWithin(other Dimensions) bool {
	return d.width <= other.width+Epsilon &&
		d.depth <= other.depth+Epsilon &&
		d.height <= other.height+Epsilon
}

// Rotations returns the six axis-aligned orientations of d.
//
// Taking (l, w, h) as (Width, Depth, Height) the order is fixed:
//
//	(l,w,h) (l,h,w) (w,l,h) (w,h,l) (h,l,w) (h,w,l)
//
// The order matters: the packer breaks score ties in favour of the first
// orientation, which keeps plans deterministic. Duplicates are kept when sides
// are equal.
func (d Dimensions) Rotations() []Dimensions {
	l, w, h := d.width, d.depth, d.height
	return []Dimensions{
		d.with(l, w, h),
		d.with(l, h, w),
		d.with(w, l, h),
		d.with(w, h, l),
		d.with(h, l, w),
		d.with(h, w, l),
	}
}

// IsRotationOf reports whether d is one of the six orientations of other.
func (d Dimensions) IsRotationOf(other Dimensions) bool {
	for _, r := range other.Rotations() {
		if d.IsEqual(r) {
			return true
		}
	}
	return false
}

// IsEqual compares the three sides within Epsilon.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return NearlyEqual(d.width, other.width) &&
		NearlyEqual(d.depth, other.depth) &&
		NearlyEqual(d.height, other.height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.width, d.depth, d.height)
}

func (d Dimensions) with(width, depth, height float64) Dimensions {
	return Dimensions{width: width, depth: depth, height: height, guard: d.guard}
}

func (d *Dimensions) setWidth(width float64) error {
	if err := validateLength("width", width); err != nil {
		return err
	}
	d.width = width
	return nil
}

func (d *Dimensions) setDepth(depth float64) error {
	if err := validateLength("depth", depth); err != nil {
		return err
	}
	d.depth = depth
	return nil
}

func (d *Dimensions) setHeight(height float64) error {
	if err := validateLength("height", height); err != nil {
		return err
	}
	d.height = height
	return nil
}

func validateLength(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.Inf(1))
	}
	return nil
}

// NearlyEqual compares two lengths within Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
