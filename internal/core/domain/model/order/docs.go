// Package order provides the Order aggregate root of the order service: an
// owned basket of line items with a lifecycle status and a derived total.
//
// The package includes:
//   - Order: the aggregate root that owns its items and records domain events
//   - Item: a line item (quantity, unit price, flavor, size) inside an order
//   - Status: the lifecycle state machine
//   - Event: a change notification drained into the outbox on commit
//
// Key business rules:
//   - The total price always equals the sum of quantity × unit price over the
//     current items; it is recomputed from scratch after every item change
//   - Status moves Pending -> Cancelled or Pending -> Finalized, both terminal
//   - Cancelling a cancelled order or finalizing a finalized one is a no-op
//   - An item belongs to exactly one order for its whole life
//   - Items may be added to and removed from orders in any status
package order
