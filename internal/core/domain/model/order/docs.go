// Package order implements the order fulfillment state machine, the aggregate
// at the center of the marketplace core.
//
// An Order is created from one seller partition of a checkout cart, with
// point-in-time price capture on every item. Its lifecycle runs
//
//	pending → confirmed → preparing → assigned_to_rider → picked_up →
//	on_the_way → delivered
//
// with cancelled reachable from any non-terminal state and refunded reachable
// from cancelled or delivered once payment was recorded as paid.
//
// Every transition is defined in a declarative table pairing the edge with the
// roles allowed to drive it and an ownership predicate, evaluated before any
// mutation: an undefined edge fails with IllegalTransition, a wrong actor with
// Unauthorized, and in both cases the order is left untouched.
package order
