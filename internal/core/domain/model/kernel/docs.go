// Package kernel contains shared value objects used across the storefront domain.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Money: A non-negative decimal amount used for prices, fees, and totals
//
// Kernel types are value objects: immutable, comparable by value, and safe for
// concurrent use. The zero value of each type is invalid and must be created
// through the provided factory functions.
package kernel
