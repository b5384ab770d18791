// Package guard provides a defensive-construction primitive for domain objects.
//
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or left as a zero
// value, which keeps command and value objects from bypassing validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs embedding it cannot be used without going
// through their constructor.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call this only
// from inside constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns err, or ErrDefaultConstructorGuard when
// err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
