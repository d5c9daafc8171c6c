// Package product implements the inventory ledger side of the marketplace.
// The Product aggregate is the sole owner of stock counts and of the
// active/out_of_stock status flip; nothing else in the system writes either.
//
// Stock moves through a two-phase protocol:
//   - Reserve places a hold that reduces available stock without touching the
//     persisted quantity, and hands back a reservation.
//   - CommitReservation finalizes the decrement when an order is assembled.
//   - ReleaseReservation returns a held quantity when assembly fails or a
//     pending order is cancelled.
//   - Restock compensates committed quantity when a confirmed order is
//     cancelled later.
//
// The aggregate keeps reservation rows after they are committed or released so
// that the ledger doubles as an audit trail of every hold taken on a product.
package product
