package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetProductsQueryHandler(db)
//	query := NewGetProductsQuery()
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get products: %v", err)
//	    return err
//	}
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog entries.
// Results are sorted by creation time so the storefront shows a stable order.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			strain_type,
			size,
			image_url,
			created_at
		FROM products
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetProductsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.Description,
			&price,
			&productResp.StrainType,
			&productResp.Size,
			&productResp.ImageURL,
			&productResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID

		amount, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		productResp.Price = amount

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
