package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full line detail.
// Serves both the customer's status page and the staff detail view.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404: unknown order
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
// Validates that the order ID is valid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponseLine represents one snapshotted line item in the
// order detail read model.
type GetOrderQueryResponseLine struct {
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	UnitPrice       kernel.Money
	VariantName     string
	VariantCategory string
}

// GetOrderQueryResponse represents the full order detail read model.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	CustomerName  string
	Zip           string
	DeliveryTier  string
	DeliveryFee   kernel.Money
	Subtotal      kernel.Money
	Total         kernel.Money
	PaymentRef    string
	IDDocumentRef string
	CreatedAt     time.Time
	Lines         []GetOrderQueryResponseLine
}
