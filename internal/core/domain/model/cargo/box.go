package cargo

import (
	"errors"
	"fmt"
	"math"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// ErrBoxIsNotConstructed is returned when a zero-value Box reaches the planner.
var ErrBoxIsNotConstructed = errs.NewValueIsRequiredError("box must be created via NewBox")

// Reference carries the business identity of a box: which order, client and
// article it ships for. All fields are informational and may be empty.
type Reference struct {
	Label       string
	OrderNumber int
	ClientCode  string
	ArticleCode string
	// Estimated is set when the box dimensions or weight came from the default
	// box rather than from recorded article data.
	Estimated bool
}

// Box is one physical package to be loaded. A Box is immutable once built.
//
// Box follows these invariants:
//   - size is a constructed Dimensions (every side > 0)
//   - weight is strictly positive
//
// Example:
//
//	size, _ := kernel.NewDimensions(40, 30, 25)
//	b, err := cargo.NewBox(0, size, 5, cargo.Reference{ArticleCode: "A-100"})
type Box struct { //nolint:recvcheck //using for validation
	id        int
	size      kernel.Dimensions
	weightKg  float64
	reference Reference
	guard     guard.ConstructorGuard
}

// NewBox validates and creates a Box.
//
// Parameters:
//   - id: sequence number, unique within one planning call
//   - size: unrotated dimensions as recorded for the article
//   - weightKg: weight of this single box, must be > 0
//   - reference: business identity of the box
//
// Returns:
//   - Box: the created box
//   - error: joined validation errors when size or weight is invalid
func NewBox(id int, size kernel.Dimensions, weightKg float64, reference Reference) (Box, error) {
	b := Box{
		id:        id,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setSize(size),
		b.setWeight(weightKg),
	); err != nil {
		return Box{}, fmt.Errorf("box %d: %w", id, err)
	}

	return b, nil
}

// Validate reports whether the box was built by NewBox.
func (b Box) Validate() error {
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// ID returns the sequence number of the box.
func (b Box) ID() int {
	return b.id
}

// Size returns the unrotated dimensions.
func (b Box) Size() kernel.Dimensions {
	return b.size
}

// Volume returns the box volume in cubic centimetres.
func (b Box) Volume() float64 {
	return b.size.Volume()
}

// WeightKg returns the weight of the box.
func (b Box) WeightKg() float64 {
	return b.weightKg
}

// Reference returns the business identity of the box.
func (b Box) Reference() Reference {
	return b.reference
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%d,%s,%gkg)", b.id, b.size, b.weightKg)
}

func (b *Box) setSize(size kernel.Dimensions) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}

func (b *Box) setWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, 0, math.Inf(1))
	}
	b.weightKg = weightKg
	return nil
}
