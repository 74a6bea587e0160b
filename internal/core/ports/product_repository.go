// Package ports defines repository and gateway interfaces for the storefront
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Provides methods for storing and retrieving catalog entries.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a catalog entry by its unique identifier.
	// Orders keep their line snapshots, so deleting a product never
	// touches existing orders.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll retrieves every catalog entry ordered by creation time.
	// Used by checkout to resolve authoritative unit prices.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
