// Package queries contains the planner's read operations. Queries never
// write; they return read models shaped for the HTTP layer.
//
// Vehicle and article reads go through the repositories so the same
// resolution rules apply as when planning (estimated interiors, default
// boxes). Order and history listings read their tables directly with SQL.
package queries
