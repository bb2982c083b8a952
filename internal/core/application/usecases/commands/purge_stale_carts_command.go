package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var (
	ErrPurgeStaleCartsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartsCommand must be created via NewPurgeStaleCartsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("ttl must be greater than 0")
)

// PurgeStaleCartsCommand represents a request to remove open carts that were
// abandoned for longer than the given TTL.
type PurgeStaleCartsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartsCommand creates a command to purge carts older than ttl.
func NewPurgeStaleCartsCommand(ttl time.Duration) (PurgeStaleCartsCommand, error) {
	purgeCommand := PurgeStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setTTL(ttl); err != nil {
		return PurgeStaleCartsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartsCommandIsNotConstructed)
}

// TTL returns how long an open cart may stay untouched before it is purged.
func (c PurgeStaleCartsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *PurgeStaleCartsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
