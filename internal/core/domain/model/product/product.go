// Package product models the catalog entry that tells how many hours one unit
// of a product takes on the shop floor.
package product

import (
	"errors"
	"fmt"
	"strings"

	"shopfloor/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned by Validate on products not built by
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry keyed by its name.
//
// Invariants:
//   - name is non-empty (surrounding blanks are trimmed)
//   - standardHours is strictly positive
//
// Products are upserted by name and never deleted. Orders copy the hours at
// creation time, so ChangeStandardHours never touches existing orders.
type Product struct {
	name          string
	standardHours float64

	isConstructed bool
}

// NewProduct validates and builds a catalog entry.
//
// Example:
//
//	p, err := product.NewProduct("Camiseta de Malha", 2)
//	if err != nil {
//	    return err // errs.IsInvalidInput(err) == true
//	}
func NewProduct(name string, standardHours float64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setName(name),
		p.setStandardHours(standardHours),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from persistence, applying the same
// validation as NewProduct.
func RestoreProduct(name string, standardHours float64) (*Product, error) {
	return NewProduct(name, standardHours)
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) Name() string {
	return p.name
}

// StandardHours is the production time of one unit, in hours.
func (p *Product) StandardHours() float64 {
	return p.standardHours
}

// ChangeStandardHours overwrites the production time. The product is left
// unchanged when hours is not positive.
func (p *Product) ChangeStandardHours(hours float64) error {
	return p.setStandardHours(hours)
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setStandardHours(hours float64) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("standard hours", fmt.Errorf("%g is not greater than 0", hours))
	}
	p.standardHours = hours
	return nil
}
