// Package guard implements a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or left as a zero
// value, so that invariants established at construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object. It guarantees that validation
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed"; constructors obtain a valid guard via NewConstructorGuard.
//
// Example:
//
//	type Plate struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlate(value string) (Plate, error) {
//	    if value == "" {
//	        return Plate{}, errors.New("plate is required")
//	    }
//	    return Plate{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plate) Validate() error {
//	    return p.guard.Validate(errPlateNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
