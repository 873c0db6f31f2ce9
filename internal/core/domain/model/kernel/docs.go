// Package kernel provides the shared value objects of the load planning domain.
//
// The package includes:
//   - Dimensions: a positive width × depth × height extent with its six axis-aligned rotations
//   - Point: a non-negative corner position inside a container
//   - PlanDate: the calendar day a truck is loaded for
//   - UUID: identifiers for persisted aggregates
//
// All values are immutable and embed a constructor guard, so a zero value fails
// Validate. Lengths are centimetres and compared within Epsilon.
package kernel
