// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root pairing a hero with a meal and tracking the
//     outcome of the asynchronous dietary-conflict check
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders start in Pending and are claimed by exactly one worker
//   - Pending -> InProgress -> Completed/Cancelled; Pending may also go
//     straight to Cancelled through an explicit cancellation request
//   - Completed and Cancelled are terminal: nothing moves an order out of them
//   - completedAt is stamped exactly once, on the terminal transition
//
// The aggregate carries an optimistic concurrency version so the store can
// reject a stale write when redelivered jobs or a concurrent cancellation
// race on the same order.
package order
