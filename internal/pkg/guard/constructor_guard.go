// Package guard provides a small helper for enforcing constructor usage on
// value types. Embedding a ConstructorGuard in a struct makes the zero value
// detectable, so objects created by bypassing the constructor fail
// validation instead of carrying unvalidated state through the system.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; obtain one via NewConstructorGuard inside the
// owning type's constructor.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrDefaultConstructorGuard
}
