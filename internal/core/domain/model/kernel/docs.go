// Package kernel contains shared value objects used across the marketplace
// domain model. It provides UUID identity for entities and aggregates, and
// Money for fixed-point currency amounts.
//
// Both types are immutable, constructor-validated, and safe for concurrent
// reads. The zero value of UUID is invalid; the zero value of Money is a valid
// amount of 0.00.
package kernel
