package plan

import (
	"fmt"

	"loadplanner/internal/pkg/errs"
)

// OptimalThresholdPct is the occupancy, volume or weight, from which a load
// counts as well used.
const OptimalThresholdPct = 90.0

// Status is the traffic-light verdict on a load plan.
//
//	SEGURO  room to spare, everything fits
//	OPTIMO  everything fits and volume or weight is at least 90 %
//	EXCESO  something did not fit, or the weight exceeds the payload
type Status int

const (
	// Unknown represents an undefined status. It catches uninitialised values.
	Unknown Status = iota
	// Seguro means every box fits with capacity to spare.
	Seguro
	// Optimo means every box fits and the truck is well used.
	Optimo
	// Exceso means the load does not fit the truck.
	Exceso
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Seguro:  "SEGURO",
		Optimo:  "OPTIMO",
		Exceso:  "EXCESO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Seguro: "SEGURO",
		Optimo: "OPTIMO",
		Exceso: "EXCESO",
	}
}

// Classify derives the status of a plan.
//
// Rules, first match wins:
//   - any overflow box, or weight occupancy above 100 %: Exceso
//   - volume or weight occupancy at or above OptimalThresholdPct: Optimo
//   - otherwise: Seguro
func Classify(overflowCount int, volumePct, weightPct float64) Status {
	switch {
	case overflowCount > 0 || weightPct > 100:
		return Exceso
	case volumePct >= OptimalThresholdPct || weightPct >= OptimalThresholdPct:
		return Optimo
	default:
		return Seguro
	}
}

// ParseStatus converts a stored string back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the status is one of Seguro, Optimo or Exceso.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
