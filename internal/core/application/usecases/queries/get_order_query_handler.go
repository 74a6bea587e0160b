package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its line detail from the
// database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Render a 404 response
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the requested order and its lines.
// Returns ObjectNotFoundError when no order has the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	detail, err := h.scanHeader(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.scanLines(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	detail.Lines = lines

	return detail, nil
}

func (h GetOrderQueryHandler) scanHeader(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	var detail GetOrderQueryResponse
	var id uuid.UUID
	var status int
	var fee, subtotal, total decimal.Decimal
	var paymentRef sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			customer_name,
			zip,
			quote_tier_name,
			quote_fee,
			subtotal,
			total,
			payment_ref,
			id_document_ref,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&status,
		&detail.CustomerName,
		&detail.Zip,
		&detail.DeliveryTier,
		&fee,
		&subtotal,
		&total,
		&paymentRef,
		&detail.IDDocumentRef,
		&detail.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	detail.ID = orderID
	detail.Status = order.Status(status)
	detail.PaymentRef = paymentRef.String

	for _, conv := range []struct {
		src decimal.Decimal
		dst *kernel.Money
	}{
		{fee, &detail.DeliveryFee},
		{subtotal, &detail.Subtotal},
		{total, &detail.Total},
	} {
		amount, moneyErr := kernel.NewMoney(conv.src)
		if moneyErr != nil {
			return GetOrderQueryResponse{}, moneyErr
		}
		*conv.dst = amount
	}

	return detail, nil
}

func (h GetOrderQueryHandler) scanLines(ctx context.Context, query GetOrderQuery) ([]GetOrderQueryResponseLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price,
			variant_name,
			variant_category
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetOrderQueryResponseLine, 0)

	for rows.Next() {
		var line GetOrderQueryResponseLine
		var productID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&productID,
			&line.ProductName,
			&line.Quantity,
			&unitPrice,
			&line.VariantName,
			&line.VariantCategory,
		)
		if err != nil {
			return nil, err
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = lineProductID

		amount, moneyErr := kernel.NewMoney(unitPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		line.UnitPrice = amount

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
