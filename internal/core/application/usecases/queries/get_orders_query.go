package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for the staff dispatch console, optionally
// filtered by lifecycle status.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.Pending)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders for the console.
// Pass order.Unknown to retrieve orders in every status; any other value must
// be a valid status and acts as a filter.
func NewGetOrdersQuery(status order.Status) (GetOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, order.Unknown when unfiltered.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// GetOrdersQueryResponse represents one console row: enough to triage an
// order without opening its detail view.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       order.Status
	CustomerName string
	Zip          string
	Total        kernel.Money
	ItemCount    int
	CreatedAt    time.Time
}
