// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - CartPartitioner: splits a mixed cart into per-seller order candidates
//   - EarningsPolicy: computes a rider's compensation for a delivered order
//
// Both services are pure: they take fully loaded aggregates and return
// values, leaving persistence to the application layer.
package services
