package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to automatically assign the
// oldest pending order to the best free deliverer. It carries no parameters;
// the handler selects both sides.
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to run one dispatch round.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}
