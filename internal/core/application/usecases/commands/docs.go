// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: a constructor-
// guarded command object, validation, and persistence through explicitly
// injected repositories.
package commands
