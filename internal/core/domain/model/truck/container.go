package truck

import (
	"errors"
	"math"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// Interior used when a vehicle has neither a recorded configuration nor a
// usable container volume.
const (
	DefaultLengthCm = 600
	DefaultWidthCm  = 240
	DefaultHeightCm = 220
)

// Ratios used to derive an interior from a bare volume: L:W:H ≈ 2.5 : 1 : 0.8.
const (
	estimateLengthRatio = 2.5
	estimateHeightRatio = 0.8
)

// ErrContainerIsNotConstructed is returned when a zero-value Container is used.
var ErrContainerIsNotConstructed = errs.NewValueIsRequiredError("container must be created via NewContainer")

// Container is the loadable interior of a vehicle, in centimetres.
//
// Axis convention used by the planner:
//   - X runs across the width
//   - Y runs along the length, from the front wall toward the doors
//   - Z runs up from the floor
type Container struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

// NewContainer validates and creates a Container. Every side must be > 0.
func NewContainer(lengthCm, widthCm, heightCm float64) (Container, error) {
	c := Container{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setLength(lengthCm),
		c.setWidth(widthCm),
		c.setHeight(heightCm),
	); err != nil {
		return Container{}, err
	}

	return c, nil
}

// DefaultContainer returns the 600×240×220 cm standard interior.
func DefaultContainer() Container {
	return Container{
		lengthCm: DefaultLengthCm,
		widthCm:  DefaultWidthCm,
		heightCm: DefaultHeightCm,
		guard:    guard.NewConstructorGuard(),
	}
}

// EstimateContainer derives an interior from a volume in cubic metres using the
// typical truck proportions L:W:H = 2.5 : 1 : 0.8, rounded to whole centimetres.
//
// Example:
//
//	c, _ := truck.EstimateContainer(31.68)
//	// c is 628 × 251 × 201 cm
func EstimateContainer(volumeM3 float64) (Container, error) {
	if math.IsNaN(volumeM3) || volumeM3 <= 0 {
		return Container{}, errs.NewValueIsOutOfRangeError("container volume", volumeM3, 0, math.Inf(1))
	}

	width := math.Round(math.Cbrt(volumeM3 * 1e6 / (estimateLengthRatio * estimateHeightRatio)))
	return NewContainer(
		math.Round(width*estimateLengthRatio),
		width,
		math.Round(width*estimateHeightRatio),
	)
}

// Validate reports whether the value was built by a constructor.
func (c Container) Validate() error {
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// LengthCm returns the interior length (Y axis).
func (c Container) LengthCm() float64 { return c.lengthCm }

// WidthCm returns the interior width (X axis).
func (c Container) WidthCm() float64 { return c.widthCm }

// HeightCm returns the interior height (Z axis).
func (c Container) HeightCm() float64 { return c.heightCm }

// VolumeCm3 returns the nominal interior volume.
func (c Container) VolumeCm3() float64 {
	return c.lengthCm * c.widthCm * c.heightCm
}

// VolumeM3 returns the nominal interior volume in cubic metres.
func (c Container) VolumeM3() float64 {
	return c.VolumeCm3() / 1e6
}

// Interior returns the container as planner dimensions: width along X,
// length as depth along Y and height along Z.
func (c Container) Interior() kernel.Dimensions {
	return kernel.MustDimensions(c.widthCm, c.lengthCm, c.heightCm)
}

// Bounds returns the usable extent once the footprint overhang tolerance is
// applied. Only width and length grow; height never does.
func (c Container) Bounds(tolerancePct float64) kernel.Dimensions {
	factor := 1 + math.Max(tolerancePct, 0)/100
	return kernel.MustDimensions(c.widthCm*factor, c.lengthCm*factor, c.heightCm)
}

func (c *Container) setLength(v float64) error {
	if !isPositive(v) {
		return errs.NewValueIsOutOfRangeError("length", v, 0, math.Inf(1))
	}
	c.lengthCm = v
	return nil
}

func (c *Container) setWidth(v float64) error {
	if !isPositive(v) {
		return errs.NewValueIsOutOfRangeError("width", v, 0, math.Inf(1))
	}
	c.widthCm = v
	return nil
}

func (c *Container) setHeight(v float64) error {
	if !isPositive(v) {
		return errs.NewValueIsOutOfRangeError("height", v, 0, math.Inf(1))
	}
	c.heightCm = v
	return nil
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
