package truck

import (
	"errors"
	"math"
	"strings"

	"loadplanner/internal/pkg/errs"
)

const (
	// DefaultTolerancePct is the footprint overhang allowed when a vehicle has no
	// recorded configuration.
	DefaultTolerancePct = 5.0
	// MaxTolerancePct bounds the overhang a configuration may declare.
	MaxTolerancePct = 100.0

	// estimatedPayloadKgPerM3 is the load density assumed when a vehicle has no
	// declared payload.
	estimatedPayloadKgPerM3 = 300
	// implausibleVolumeFactor marks a configured interior as wrong when it is this
	// many times larger than the registered container volume.
	implausibleVolumeFactor = 3
)

// ErrTruckIsNotConstructed is returned when a Truck was not built by NewTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

// Truck is a vehicle as the planner sees it: identity, loadable interior, payload
// and the overhang tolerance applied to its floor.
//
// Truck follows these invariants:
//   - code is not blank
//   - container is constructed
//   - maxPayloadKg is >= 0 (0 means unknown, weight occupancy is then reported as 0)
//   - tolerancePct is within [0, MaxTolerancePct]
type Truck struct {
	code              string
	description       string
	plate             string
	container         Container
	maxPayloadKg      float64
	tolerancePct      float64
	interiorEstimated bool
	isConstructed     bool
}

// NewTruck validates and creates a Truck.
//
// Parameters:
//   - code: vehicle code, required
//   - description, plate: informational
//   - container: loadable interior
//   - maxPayloadKg: declared payload, >= 0
//   - tolerancePct: footprint overhang, within [0, MaxTolerancePct]
//
// Returns:
//   - *Truck: the created truck
//   - error: joined validation errors
func NewTruck(
	code string,
	description string,
	plate string,
	container Container,
	maxPayloadKg float64,
	tolerancePct float64,
) (*Truck, error) {
	t := &Truck{
		description:   strings.TrimSpace(description),
		plate:         strings.TrimSpace(plate),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setCode(code),
		t.setContainer(container),
		t.setPayload(maxPayloadKg),
		t.setTolerance(tolerancePct),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the truck was built by NewTruck.
func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

// Code returns the vehicle code.
func (t *Truck) Code() string { return t.code }

// Description returns the vehicle description.
func (t *Truck) Description() string { return t.description }

// Plate returns the licence plate.
func (t *Truck) Plate() string { return t.plate }

// Container returns the loadable interior.
func (t *Truck) Container() Container { return t.container }

// MaxPayloadKg returns the payload limit used for weight occupancy.
func (t *Truck) MaxPayloadKg() float64 { return t.maxPayloadKg }

// TolerancePct returns the configured footprint overhang.
func (t *Truck) TolerancePct() float64 { return t.tolerancePct }

// InteriorEstimated reports whether the interior was derived from the
// container volume instead of a measured configuration.
func (t *Truck) InteriorEstimated() bool { return t.interiorEstimated }

// EffectiveTolerance returns override when it is set, otherwise the
// configured tolerance.
func (t *Truck) EffectiveTolerance(override *float64) (float64, error) {
	if override == nil {
		return t.tolerancePct, nil
	}
	if err := validateTolerance(*override); err != nil {
		return 0, err
	}
	return *override, nil
}

// MarkInteriorEstimated flags the interior as derived from volume.
func (t *Truck) MarkInteriorEstimated() {
	t.interiorEstimated = true
}

// Reconfigure replaces the measured interior and tolerance.
//
// Returns:
//   - error: validation error, in which case the truck is left unchanged
func (t *Truck) Reconfigure(container Container, tolerancePct float64) error {
	if err := errors.Join(container.Validate(), validateTolerance(tolerancePct)); err != nil {
		return err
	}
	t.container = container
	t.tolerancePct = tolerancePct
	t.interiorEstimated = false
	return nil
}

func (t *Truck) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("vehicle code")
	}
	t.code = code
	return nil
}

func (t *Truck) setContainer(container Container) error {
	if err := container.Validate(); err != nil {
		return err
	}
	t.container = container
	return nil
}

func (t *Truck) setPayload(maxPayloadKg float64) error {
	if math.IsNaN(maxPayloadKg) || math.IsInf(maxPayloadKg, 0) || maxPayloadKg < 0 {
		return errs.NewValueIsOutOfRangeError("max payload", maxPayloadKg, 0, math.Inf(1))
	}
	t.maxPayloadKg = maxPayloadKg
	return nil
}

func (t *Truck) setTolerance(tolerancePct float64) error {
	if err := validateTolerance(tolerancePct); err != nil {
		return err
	}
	t.tolerancePct = tolerancePct
	return nil
}

func validateTolerance(tolerancePct float64) error {
	if math.IsNaN(tolerancePct) || tolerancePct < 0 || tolerancePct > MaxTolerancePct {
		return errs.NewValueIsOutOfRangeError("tolerance", tolerancePct, 0, MaxTolerancePct)
	}
	return nil
}

// ResolvePayloadKg returns declared when it is positive, otherwise an estimate
// of 300 kg per cubic metre of container volume rounded to the kilogram.
func ResolvePayloadKg(declared, containerVolumeM3 float64) float64 {
	if declared > 0 {
		return declared
	}
	if containerVolumeM3 <= 0 {
		return 0
	}
	return math.Round(containerVolumeM3 * estimatedPayloadKgPerM3)
}

// ResolveContainer picks the interior to plan with.
//
// A configured interior is used unless it is missing (any side <= 0) or more
// than three times larger than the registered container volume, in which case
// the interior is estimated from that volume. The second result reports
// whether the estimate was used. A non-positive volume is treated as 1 m³.
func ResolveContainer(lengthCm, widthCm, heightCm, containerVolumeM3 float64) (Container, bool, error) {
	if containerVolumeM3 <= 0 || math.IsNaN(containerVolumeM3) {
		containerVolumeM3 = 1
	}

	configuredM3 := lengthCm * widthCm * heightCm / 1e6
	if lengthCm > 0 && widthCm > 0 && heightCm > 0 &&
		configuredM3 <= containerVolumeM3*implausibleVolumeFactor {
		c, err := NewContainer(lengthCm, widthCm, heightCm)
		return c, false, err
	}

	c, err := EstimateContainer(containerVolumeM3)
	return c, true, err
}
