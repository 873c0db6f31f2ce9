package plan

import (
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"
)

// Metrics summarises a plan. Percentages and weights are rounded to two
// decimals; volumes are cubic centimetres.
type Metrics struct {
	TotalBoxes         int
	PlacedCount        int
	OverflowCount      int
	ContainerVolumeCm3 float64
	UsedVolumeCm3      float64
	VolumeOccupancyPct float64
	TotalWeightKg      float64
	OverflowWeightKg   float64
	MaxPayloadKg       float64
	WeightOccupancyPct float64
	Status             Status
}

// Measure computes the metrics of a finished placement.
//
// Used volume sums the placed orientations; rotation preserves volume so this
// equals the sum of the box volumes. Weight occupancy is 0 when maxPayloadKg
// is not positive.
func Measure(container truck.Container, maxPayloadKg float64, placed []cargo.PlacedBox, overflow []cargo.Box) Metrics {
	var usedVolume, placedWeight, overflowWeight float64
	for _, p := range placed {
		usedVolume += p.Volume()
		placedWeight += p.Box().WeightKg()
	}
	for _, b := range overflow {
		overflowWeight += b.WeightKg()
	}

	containerVolume := container.VolumeCm3()
	var volumePct, weightPct float64
	if containerVolume > 0 {
		volumePct = kernel.Round2(usedVolume / containerVolume * 100)
	}
	if maxPayloadKg > 0 {
		weightPct = kernel.Round2(placedWeight / maxPayloadKg * 100)
	}

	return Metrics{
		TotalBoxes:         len(placed) + len(overflow),
		PlacedCount:        len(placed),
		OverflowCount:      len(overflow),
		ContainerVolumeCm3: containerVolume,
		UsedVolumeCm3:      usedVolume,
		VolumeOccupancyPct: volumePct,
		TotalWeightKg:      kernel.Round2(placedWeight),
		OverflowWeightKg:   kernel.Round2(overflowWeight),
		MaxPayloadKg:       maxPayloadKg,
		WeightOccupancyPct: weightPct,
		Status:             Classify(len(overflow), volumePct, weightPct),
	}
}
