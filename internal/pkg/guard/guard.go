// Package guard lets value objects and commands tell a constructed instance
// apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be built through their
// constructor. Its zero value reports "not constructed".
//
// Example:
//
//	var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")
//
//	type Product struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise,
// falling back to ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
