// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the full catalog for the storefront listing.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve catalog: %w", err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s: $%s\n", p.Name, p.Price)
//	}
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every product.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one catalog entry in the read model.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	StrainType  string
	Size        string
	ImageURL    string
	CreatedAt   time.Time
}
