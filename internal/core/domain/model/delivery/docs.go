// Package delivery holds the rider-side aggregates: the Delivery record that
// tracks one assignment attempt for an order, the RiderEarning computed when
// that attempt succeeds, and the RiderRating a seller may leave afterwards.
//
// Delivery records are append-only. A failed attempt is never reused; the next
// assignment creates a fresh record, so the table doubles as the assignment
// history of the order.
package delivery
