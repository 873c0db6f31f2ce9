package services

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/errs"
)

// ScoreWeights tunes the placement heuristic.
//
//	score = FootprintFit·(box floor area / space floor area) − Shelf·z − Corner·(x + y)
//
// FootprintFit rewards orientations that cover the floor of a region, Shelf
// keeps loads low and Corner packs toward the origin corner.
type ScoreWeights struct {
	FootprintFit float64
	Shelf        float64
	Corner       float64
}

// Validate reports weights that are not finite numbers.
func (w ScoreWeights) Validate() error {
	return errors.Join(
		validateWeight("footprint weight", w.FootprintFit),
		validateWeight("shelf weight", w.Shelf),
		validateWeight("corner weight", w.Corner),
	)
}

func validateWeight(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}

// DefaultScoreWeights returns 1000 / 10 / 1.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		FootprintFit: 1000,
		Shelf:        10,
		Corner:       1,
	}
}

// LoadPacker is a domain service that places boxes into a single container
// with a greedy best-fit heuristic over a guillotine free-space index.
//
// Algorithm:
//   - boxes are tried largest volume first, ties keep their input order
//   - for each box every free region and every one of the six orientations is
//     scored; the highest score wins and the first seen wins ties
//   - the winning region is split around the box and neighbours are coalesced
//   - a box with no candidate goes to overflow unrotated
//
// The free space starts as the nominal container. A positive tolerance adds
// one pass per whole percent up to it, each seeded with the footprint widened
// by that step, and the pass with the fewest overflow boxes wins, the lowest
// step on ties. Raising the tolerance only adds passes, so it never adds
// overflow.
//
// The packer holds no state between calls and is safe for concurrent use.
// The same input always yields the same plan.
//
// Example usage:
//
//	packer := services.NewLoadPacker(services.DefaultScoreWeights())
//	result, err := packer.Pack(boxes, truck.Container(), 5, truck.MaxPayloadKg())
//	if err != nil {
//	    // invalid geometry in the input
//	}
//	fmt.Println(result.Metrics().VolumeOccupancyPct)
type LoadPacker struct {
	weights ScoreWeights
}

// NewLoadPacker creates a LoadPacker with the given heuristic weights.
func NewLoadPacker(weights ScoreWeights) LoadPacker {
	return LoadPacker{weights: weights}
}

// Weights returns the heuristic weights in use.
func (p LoadPacker) Weights() ScoreWeights {
	return p.weights
}

// Pack computes a placement of boxes inside container.
//
// Parameters:
//   - boxes: the boxes to load, each built by cargo.NewBox
//   - container: the nominal interior
//   - tolerancePct: footprint overhang in percent, within
//     [0, truck.MaxTolerancePct]; width and length of the usable region grow
//     by this factor, height never does
//   - maxPayloadKg: payload used for weight occupancy, 0 when unknown
//
// Returns:
//   - plan.Result: placed and overflow boxes with metrics; every box appears
//     in exactly one of the two lists
//   - error: invalid geometry, tolerance or weights, reported before any
//     placement
func (p LoadPacker) Pack(
	boxes []cargo.Box,
	container truck.Container,
	tolerancePct float64,
	maxPayloadKg float64,
) (plan.Result, error) {
	if err := validatePackInput(p.weights, boxes, container, tolerancePct); err != nil {
		return plan.Result{}, err
	}

	var best plan.Result
	for i, step := range toleranceSteps(tolerancePct) {
		result, err := p.packWithin(boxes, container, container.Bounds(step), maxPayloadKg)
		if err != nil {
			return plan.Result{}, err
		}
		if i == 0 || len(result.Overflow()) < len(best.Overflow()) {
			best = result
		}
		if len(best.Overflow()) == 0 {
			break
		}
	}
	return best, nil
}

// toleranceSteps returns 0 and every whole percent up to tolerancePct.
func toleranceSteps(tolerancePct float64) []float64 {
	steps := []float64{0}
	for pct := 1.0; pct <= tolerancePct; pct++ {
		steps = append(steps, pct)
	}
	return steps
}

// packWithin runs one greedy pass with the free space seeded at bounds.
func (p LoadPacker) packWithin(
	boxes []cargo.Box,
	container truck.Container,
	bounds kernel.Dimensions,
	maxPayloadKg float64,
) (plan.Result, error) {
	index := NewFreeSpaceIndex(FreeSpace{W: bounds.Width(), D: bounds.Depth(), H: bounds.Height()})

	queue := slices.Clone(boxes)
	slices.SortStableFunc(queue, func(a, b cargo.Box) int {
		return cmp.Compare(b.Volume(), a.Volume())
	})

	placed := make([]cargo.PlacedBox, 0, len(queue))
	var overflow []cargo.Box

	for _, box := range queue {
		spaceIndex, size, ok := p.bestFit(index.Candidates(), box, bounds)
		if !ok {
			overflow = append(overflow, box)
			continue
		}

		at, err := index.Commit(spaceIndex, size)
		if err != nil {
			return plan.Result{}, fmt.Errorf("commit box %d: %w", box.ID(), err)
		}
		index.Coalesce()

		pb, err := cargo.NewPlacedBox(box, at, size)
		if err != nil {
			return plan.Result{}, fmt.Errorf("place box %d: %w", box.ID(), err)
		}
		placed = append(placed, pb)
	}

	return plan.NewResult(container, maxPayloadKg, placed, overflow), nil
}

// bestFit returns the region index and orientation with the highest score.
func (p LoadPacker) bestFit(spaces []FreeSpace, box cargo.Box, bounds kernel.Dimensions) (int, kernel.Dimensions, bool) {
	bestScore := math.Inf(-1)
	bestIndex := -1
	var bestSize kernel.Dimensions

	rotations := box.Size().Rotations()
	for i, s := range spaces {
		for _, r := range rotations {
			if !s.Fits(r) || !withinBounds(s, r, bounds) {
				continue
			}
			score := p.score(s, r)
			if score > bestScore {
				bestScore = score
				bestIndex = i
				bestSize = r
			}
		}
	}

	return bestIndex, bestSize, bestIndex >= 0
}

func (p LoadPacker) score(s FreeSpace, r kernel.Dimensions) float64 {
	fit := r.Footprint() / (s.W * s.D)
	return p.weights.FootprintFit*fit - p.weights.Shelf*s.Z - p.weights.Corner*(s.X+s.Y)
}

// withinBounds checks the placement at the region origin against the
// tolerated container extent.
func withinBounds(s FreeSpace, r kernel.Dimensions, bounds kernel.Dimensions) bool {
	return s.X+r.Width() <= bounds.Width()+kernel.Epsilon &&
		s.Y+r.Depth() <= bounds.Depth()+kernel.Epsilon &&
		s.Z+r.Height() <= bounds.Height()+kernel.Epsilon
}

func validatePackInput(weights ScoreWeights, boxes []cargo.Box, container truck.Container, tolerancePct float64) error {
	var errList []error
	if err := weights.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := container.Validate(); err != nil {
		errList = append(errList, err)
	}
	if math.IsNaN(tolerancePct) || tolerancePct < 0 || tolerancePct > truck.MaxTolerancePct {
		errList = append(errList, errs.NewValueIsOutOfRangeError("tolerance", tolerancePct, 0, truck.MaxTolerancePct))
	}
	for i, b := range boxes {
		if err := b.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("box at %d: %w", i, err))
		}
	}
	return errors.Join(errList...)
}
