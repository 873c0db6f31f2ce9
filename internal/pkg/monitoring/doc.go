// Package monitoring exposes the planner's Prometheus metrics: HTTP traffic,
// plan outcomes and snapshot job runs. Each Metrics value owns its own
// registry, served by Handler.
package monitoring
