// Package order provides the production order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the order's label, product snapshot,
//     urgency/cost ratings, priority score, deadline and status
//   - Status: the state machine Open -> Completed
//   - ChangedEvent: the informational event emitted when an order is created or completed
//
// Key business rules:
//   - urgency and cost are ratings in [MinRating, MaxRating]
//   - production hours are copied from the product when the order is created
//   - the score is computed once, at creation, and never recomputed
//   - Completed is terminal: there is no reopening
package order
