// Package truck models the vehicles a load is planned for.
//
// The package includes:
//   - Container: the loadable interior and its tolerated planning bounds
//   - Truck: identity, interior, payload and overhang tolerance
//   - ResolveContainer and ResolvePayloadKg: the rules that turn fleet records
//     into planning inputs when the measured configuration is missing or wrong
package truck
