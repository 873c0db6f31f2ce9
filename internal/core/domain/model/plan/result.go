package plan

import (
	"slices"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/truck"
)

// Result is the outcome of one planning call: where each box went, which boxes
// did not fit and the metrics over both. A Result is never modified after it is
// built; accessors return copies.
type Result struct {
	placed   []cargo.PlacedBox
	overflow []cargo.Box
	metrics  Metrics
}

// NewResult assembles a Result and measures it against container and payload.
func NewResult(container truck.Container, maxPayloadKg float64, placed []cargo.PlacedBox, overflow []cargo.Box) Result {
	return Result{
		placed:   slices.Clone(placed),
		overflow: slices.Clone(overflow),
		metrics:  Measure(container, maxPayloadKg, placed, overflow),
	}
}

// EmptyResult is the plan for a truck with nothing to load.
func EmptyResult(container truck.Container, maxPayloadKg float64) Result {
	return NewResult(container, maxPayloadKg, nil, nil)
}

// Placed returns the placed boxes in placement order.
func (r Result) Placed() []cargo.PlacedBox {
	return slices.Clone(r.placed)
}

// Overflow returns the boxes that did not fit, in the order they were tried.
func (r Result) Overflow() []cargo.Box {
	return slices.Clone(r.overflow)
}

// Metrics returns the plan metrics.
func (r Result) Metrics() Metrics {
	return r.metrics
}

// Status is shorthand for Metrics().Status.
func (r Result) Status() Status {
	return r.metrics.Status
}
