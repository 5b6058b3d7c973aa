package memory

import (
	"context"

	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/pkg/errs"
)

// ProductRepository implements ports.ProductRepository on a Ledger.
type ProductRepository struct {
	access stateAccess
}

func (r *ProductRepository) Upsert(ctx context.Context, p *product.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	return r.access.write(func(state *ledgerState) error {
		if i, exists := state.productIndex[p.Name()]; exists {
			state.products[i] = cloneProduct(p)
			return nil
		}

		state.productIndex[p.Name()] = len(state.products)
		state.products = append(state.products, cloneProduct(p))
		return nil
	})
}

func (r *ProductRepository) Get(ctx context.Context, name string) (*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *product.Product
	err := r.access.read(func(state *ledgerState) error {
		i, exists := state.productIndex[name]
		if !exists {
			return errs.NewObjectNotFoundError("product", name)
		}

		found = cloneProduct(state.products[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var products []*product.Product
	err := r.access.read(func(state *ledgerState) error {
		products = make([]*product.Product, 0, len(state.products))
		for _, p := range state.products {
			products = append(products, cloneProduct(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}
