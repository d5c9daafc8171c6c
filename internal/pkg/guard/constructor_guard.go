// Package guard provides the constructor guard pattern used by domain objects.
// Embedding a ConstructorGuard lets an entity or value object detect whether it
// was created through its designated constructor or as a zero value, keeping
// invariants enforceable even when structs are reconstructed from persistence.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value fails validation; constructors set the flag via NewConstructorGuard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
