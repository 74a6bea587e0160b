// Package order provides the order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root holding the cart snapshot, delivery quote,
//     customer address, totals, and lifecycle status
//   - Status: A state machine enforcing the fixed fulfillment sequence
//   - Address: The customer contact and delivery address value object
//   - StatusChangedEvent: A domain event recorded on every transition
//
// Key business rules:
//   - Orders are created only with an allowed delivery quote, a non-empty cart,
//     a complete address, an ID-document attachment, and a customer aged 21+
//   - The cart is snapshotted at creation; later cart or catalog changes never
//     alter an existing order
//   - Status advances one step at a time through
//     pending -> confirmed -> dispatched -> delivered; cancelled is reachable
//     from any non-terminal state; delivered and cancelled are terminal
//   - Cancelling an already-cancelled order is an idempotent no-op
//   - Every effective transition appends a StatusChangedEvent and bumps the
//     aggregate version used for optimistic concurrency control
package order
