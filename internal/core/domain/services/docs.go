// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteEngine: A domain service for quoting delivery eligibility and fees
//     from a destination ZIP code and cart subtotal
//
// Domain services coordinate between aggregates and value objects, implementing
// business logic that spans bounded contexts following Domain-Driven Design
// principles.
package services
