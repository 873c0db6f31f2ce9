package cargo

import (
	"errors"
	"math"
	"strings"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// Default box used when an article has no recorded packaging data.
const (
	DefaultBoxLengthCm = 40
	DefaultBoxWidthCm  = 30
	DefaultBoxHeightCm = 25
	DefaultBoxWeightKg = 5
)

// ErrArticleIsNotConstructed is returned when a zero-value Article is used.
var ErrArticleIsNotConstructed = errs.NewValueIsRequiredError("article must be created via NewArticle")

// Article describes how one article code ships: the box size, the weight used
// per box (or per unit, see UnitsPerBox) and whether the data is an estimate.
type Article struct {
	code        string
	name        string
	box         kernel.Dimensions
	weightKg    float64
	unitsPerBox int
	estimated   bool
	guard       guard.ConstructorGuard
}

// NewArticle validates and creates an Article.
//
// Parameters:
//   - code: article code, required
//   - name: display name, may be empty
//   - box: packaging dimensions
//   - weightKg: weight applied per box or per unit, must be > 0
//   - unitsPerBox: informational, values below 1 are stored as 1
//   - estimated: true when any value was defaulted
func NewArticle(
	code string,
	name string,
	box kernel.Dimensions,
	weightKg float64,
	unitsPerBox int,
	estimated bool,
) (Article, error) {
	a := Article{
		name:        name,
		unitsPerBox: max(unitsPerBox, 1),
		estimated:   estimated,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setCode(code),
		a.setBox(box),
		a.setWeight(weightKg),
	); err != nil {
		return Article{}, err
	}

	return a, nil
}

// DefaultArticle returns the 40×30×25 cm, 5 kg default box for code, flagged
// as estimated.
func DefaultArticle(code string) Article {
	return Article{
		code:        strings.TrimSpace(code),
		box:         kernel.MustDimensions(DefaultBoxLengthCm, DefaultBoxWidthCm, DefaultBoxHeightCm),
		weightKg:    DefaultBoxWeightKg,
		unitsPerBox: 1,
		estimated:   true,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate reports whether the value was built by a constructor.
func (a Article) Validate() error {
	return a.guard.Validate(ErrArticleIsNotConstructed)
}

// Code returns the article code.
func (a Article) Code() string { return a.code }

// Name returns the display name.
func (a Article) Name() string { return a.name }

// Box returns the packaging dimensions.
func (a Article) Box() kernel.Dimensions { return a.box }

// WeightKg returns the weight per box or per unit.
func (a Article) WeightKg() float64 { return a.weightKg }

// UnitsPerBox returns how many units ship in one box.
func (a Article) UnitsPerBox() int { return a.unitsPerBox }

// Estimated reports whether any value was defaulted.
func (a Article) Estimated() bool { return a.estimated }

func (a *Article) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("article code")
	}
	a.code = code
	return nil
}

func (a *Article) setBox(box kernel.Dimensions) error {
	if err := box.Validate(); err != nil {
		return err
	}
	a.box = box
	return nil
}

func (a *Article) setWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return errs.NewValueIsOutOfRangeError("article weight", weightKg, 0, math.Inf(1))
	}
	a.weightKg = weightKg
	return nil
}

// Catalog maps article codes to their packaging data.
type Catalog map[string]Article

// Lookup returns the article for code or the default box when it is unknown.
func (c Catalog) Lookup(code string) Article {
	if a, ok := c[strings.TrimSpace(code)]; ok {
		return a
	}
	return DefaultArticle(code)
}

// Complete returns a copy of c holding an entry for every code, with the
// default box filled in for codes that are missing.
func (c Catalog) Complete(codes []string) Catalog {
	out := make(Catalog, len(codes))
	for code, a := range c {
		out[code] = a
	}
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if _, ok := out[code]; !ok {
			out[code] = DefaultArticle(code)
		}
	}
	return out
}
