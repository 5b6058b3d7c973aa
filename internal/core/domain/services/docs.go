// Package services holds the domain services of the shop floor: logic that
// works across orders rather than inside a single aggregate.
//
// The package includes:
//   - ScoringEngine: the priority score given to every new order
//   - ReportAggregator: read-only counts, capacity utilization, deadline
//     alerts and period summaries over a snapshot of the order ledger
//
// Both services are pure. They never read the clock: every time-dependent
// computation takes the reference date from its caller.
package services
