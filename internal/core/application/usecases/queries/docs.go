// Package queries contains read-only operations over the food-ordering
// state. Implements the Query side of the CQRS architecture: each query is a
// constructor-guarded object paired with a handler that reads through the
// repository ports and returns flat response structs, never domain
// aggregates.
package queries
