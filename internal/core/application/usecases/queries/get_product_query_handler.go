package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single catalog entry from the database.
//
// Example:
//
//	handler := NewGetProductQueryHandler(db)
//	query, _ := NewGetProductQuery(productID)
//
//	product, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Render a 404 response
//	}
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve the requested product.
// Returns ObjectNotFoundError when no product has the given identifier.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	var productResp GetProductsQueryResponse
	var id uuid.UUID
	var price decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(
		&id,
		&productResp.Name,
		&productResp.Description,
		&price,
		&productResp.StrainType,
		&productResp.Size,
		&productResp.ImageURL,
		&productResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductsQueryResponse{},
			errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	if err != nil {
		return GetProductsQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProductsQueryResponse{}, err
	}
	productResp.ID = productID

	amount, err := kernel.NewMoney(price)
	if err != nil {
		return GetProductsQueryResponse{}, err
	}
	productResp.Price = amount

	return productResp, nil
}
