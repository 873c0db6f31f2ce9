package cargo

import (
	"errors"
	"math"
	"strings"

	"loadplanner/internal/pkg/errs"
)

// OrderLine is one line of a delivery order assigned to a truck. Units and
// Packages are counts as recorded by the order system; either may be zero.
type OrderLine struct {
	OrderYear   int
	OrderNumber int
	DriverCode  string
	ClientCode  string
	ArticleCode string
	Units       float64
	Packages    float64
}

// Validate checks the line can be expanded into boxes.
func (l OrderLine) Validate() error {
	var errList []error
	if strings.TrimSpace(l.ArticleCode) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("article code"))
	}
	if l.Units < 0 || math.IsNaN(l.Units) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("units", l.Units, 0, math.Inf(1)))
	}
	if l.Packages < 0 || math.IsNaN(l.Packages) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("packages", l.Packages, 0, math.Inf(1)))
	}
	return errors.Join(errList...)
}

// BoxCount is the number of physical boxes the line ships as. Lines without a
// package count ship as a single box.
func (l OrderLine) BoxCount() int {
	if l.Packages > 0 {
		return max(int(math.Round(l.Packages)), 1)
	}
	return 1
}

// ManualItem is a what-if line entered by hand. Explicit dimensions and weight
// are optional; when LengthCm, WidthCm and HeightCm are all positive they
// override the catalog.
type ManualItem struct {
	ArticleCode string
	Quantity    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
	WeightKg    float64
	Label       string
	OrderNumber int
	ClientCode  string
}

// BoxCount is max(1, round(Quantity)).
func (m ManualItem) BoxCount() int {
	if math.IsNaN(m.Quantity) {
		return 1
	}
	return max(int(math.Round(m.Quantity)), 1)
}

// HasDimensions reports whether all three explicit sides are set.
func (m ManualItem) HasDimensions() bool {
	return m.LengthCm > 0 && m.WidthCm > 0 && m.HeightCm > 0
}
