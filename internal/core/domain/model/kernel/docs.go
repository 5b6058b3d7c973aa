// Package kernel holds the value objects shared by the product and order
// models: UUID order identifiers and calendar Dates for deadlines.
//
// Both are immutable and invalid as zero values; construct them through the
// package functions.
package kernel
