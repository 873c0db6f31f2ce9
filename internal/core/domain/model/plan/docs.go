// Package plan holds the outcome of load planning.
//
// The package includes:
//   - Result: placed boxes, overflow boxes and their Metrics
//   - Status: the SEGURO / OPTIMO / EXCESO verdict and its classifier
//   - Record: the history entry persisted for each planned truck
//
// Key business rules:
//   - volume occupancy is measured against the nominal container, not the tolerated bounds
//   - weight occupancy is measured against the truck payload, 0 when the payload is unknown
//   - any overflow, or weight beyond the payload, makes the plan EXCESO
package plan
