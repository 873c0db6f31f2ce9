// Package cargo holds what goes into a truck: boxes, where they were placed,
// the article catalog they are sized from and the order lines they come from.
//
// The package includes:
//   - Box: one physical package with dimensions, weight and business reference
//   - PlacedBox: a box at a position in one of its six orientations
//   - Article and Catalog: packaging data per article code, with a default box
//   - OrderLine and ManualItem: the inputs that expand into boxes
//
// Key business rules:
//   - every box side and every box weight is strictly positive
//   - a placed orientation is always a rotation of the box dimensions
//   - unknown articles ship as the 40×30×25 cm, 5 kg default box, flagged estimated
package cargo
