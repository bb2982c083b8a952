// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food-ordering system.
// It implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - DelivererDispatcher: A domain service for picking the best free deliverer for a pending order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
