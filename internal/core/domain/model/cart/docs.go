// Package cart provides the shopping cart model used to build orders.
//
// The package includes:
//   - Line: A cart line item with product reference, quantity, unit price,
//     and an optional variant selector
//   - Cart: An ordered collection of lines with subtotal aggregation
//
// The cart is session-local and transient: it is assembled per request from
// client-submitted items (with prices resolved server-side from the catalog)
// and snapshotted into an order at creation time. Orders never reference live
// cart state.
//
// Key invariants:
//   - Line quantity is always >= 1; removing the last unit removes the line
//   - Lines with the same product and variant merge into one line
package cart
