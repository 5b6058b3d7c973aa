package order

import (
	"errors"
	"fmt"
	"strings"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/pkg/errs"
)

// Urgency and cost are rated on the same 1..10 scale.
const (
	MinRating = 1
	MaxRating = 10
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for orders not built by
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrScorerIsRequired is returned when NewOrder gets no Scorer.
	ErrScorerIsRequired = errs.NewValueIsRequiredError("scorer")
)

// Scorer computes the priority of a new order. It must be a pure function.
type Scorer interface {
	Score(urgency int, cost int, productionHours float64) float64
}

// Order is a customer production request. It is the aggregate root of the
// order ledger.
//
// Order follows these invariants:
//   - id is a valid UUID; name is a non-empty caller label (not unique)
//   - urgency and cost are in [MinRating, MaxRating]
//   - productionHours is a snapshot of the product's standard hours, >= 0
//   - score is fixed at creation
//   - status only moves Open -> Completed
type Order struct {
	id              kernel.UUID
	name            string
	productName     string
	urgency         int
	cost            int
	productionHours float64
	score           float64
	deadline        kernel.Date
	status          Status

	isConstructed bool
}

// NewOrder validates the request, snapshots the product's standard hours and
// computes the score once with scorer. The order starts Open.
//
// Example:
//
//	camiseta, _ := product.NewProduct("Camiseta de Malha", 2)
//	deadline := kernel.MustNewDate(2025, time.January, 20)
//	o, err := order.NewOrder(kernel.NewUUID(), "Pedido 42", camiseta, 8, 3, deadline, services.NewScoringEngine())
//	// o.Score() == 7.7
func NewOrder(
	id kernel.UUID,
	name string,
	p *product.Product,
	urgency int,
	cost int,
	deadline kernel.Date,
	scorer Scorer,
) (*Order, error) {
	o := &Order{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setProduct(p),
		o.setUrgency(urgency),
		o.setCost(cost),
		o.setDeadline(deadline),
		requireScorer(scorer),
	); err != nil {
		return nil, err
	}

	o.score = scorer.Score(o.urgency, o.cost, o.productionHours)
	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. The stored score is
// trusted as is: scores are never recomputed after creation.
func RestoreOrder(
	id kernel.UUID,
	name string,
	productName string,
	urgency int,
	cost int,
	productionHours float64,
	score float64,
	deadline kernel.Date,
	status Status,
) (*Order, error) {
	o := &Order{
		score:         score,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setProductSnapshot(productName, productionHours),
		o.setUrgency(urgency),
		o.setCost(cost),
		o.setDeadline(deadline),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Name returns the caller supplied label.
func (o *Order) Name() string {
	return o.name
}

// Product returns the name of the catalog product the order was created for.
func (o *Order) Product() string {
	return o.productName
}

func (o *Order) Urgency() int {
	return o.urgency
}

func (o *Order) Cost() int {
	return o.cost
}

// ProductionHours returns the product hours captured at creation.
func (o *Order) ProductionHours() float64 {
	return o.productionHours
}

func (o *Order) Score() float64 {
	return o.score
}

func (o *Order) Deadline() kernel.Date {
	return o.deadline
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsOpen() bool {
	return o.status == Open
}

// IsOverdue reports whether the order is still Open with a deadline strictly
// before the reference date.
func (o *Order) IsOverdue(reference kernel.Date) bool {
	return o.IsOpen() && o.deadline.Before(reference)
}

// IsDueWithin reports whether the order is Open and deadline - windowDays <= reference,
// i.e. due within windowDays days or already overdue.
func (o *Order) IsDueWithin(reference kernel.Date, windowDays int) bool {
	return o.IsOpen() && !o.deadline.AddDays(-windowDays).After(reference)
}

// Complete moves the order from Open to Completed. Completing a Completed
// order fails with errs.ErrTransitionIsInvalid and changes nothing.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("order name")
	}
	o.name = name
	return nil
}

func (o *Order) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return o.setProductSnapshot(p.Name(), p.StandardHours())
}

func (o *Order) setProductSnapshot(productName string, productionHours float64) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if productionHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"production hours",
			fmt.Errorf("%g is less than 0", productionHours),
		)
	}
	o.productName = productName
	o.productionHours = productionHours
	return nil
}

func (o *Order) setUrgency(urgency int) error {
	if urgency < MinRating || urgency > MaxRating {
		return errs.NewValueIsOutOfRangeError("urgency", urgency, MinRating, MaxRating)
	}
	o.urgency = urgency
	return nil
}

func (o *Order) setCost(cost int) error {
	if cost < MinRating || cost > MaxRating {
		return errs.NewValueIsOutOfRangeError("cost", cost, MinRating, MaxRating)
	}
	o.cost = cost
	return nil
}

func (o *Order) setDeadline(deadline kernel.Date) error {
	if err := deadline.Validate(); err != nil {
		return err
	}
	o.deadline = deadline
	return nil
}

func requireScorer(scorer Scorer) error {
	if scorer == nil {
		return ErrScorerIsRequired
	}
	return nil
}
