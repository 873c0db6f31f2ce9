// Package services provides the domain services of load planning: behaviour
// that spans boxes, containers and plans rather than belonging to one of them.
//
// The package includes:
//   - LoadPacker: greedy best-fit 3D placement of boxes into one container
//   - FreeSpaceIndex: the guillotine free-space structure the packer splits and coalesces
//   - BoxExpander: turns order lines and manual items into unit boxes
//
// Every service is stateless between calls and safe for concurrent use.
package services
