package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Resolves authoritative unit prices from the catalog, recomputes the delivery
// quote server-side, and creates the order in "pending" status. Client-supplied
// prices or quotes are never trusted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, quoteEngine, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, items, address, idRef)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is now pending and awaiting payment
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	quoteEngine services.QuoteEngine
	publisher   ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a UoWFactory spanning catalog and orders, the quoting engine, and
// an event publisher for post-commit status notifications.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	quoteEngine services.QuoteEngine,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		quoteEngine: quoteEngine,
		publisher:   publisher,
	}
}

// Handle processes the checkout command.
// Each submitted item is priced from the catalog; an unknown product fails the
// whole checkout with an ObjectNotFoundError. The delivery quote is recomputed
// from the address ZIP and the resolved subtotal, so a stale client quote can
// never produce an ineligible order. Status events are published only after
// the transaction commits.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basket, err := h.buildCart(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return err
	}

	quote := h.quoteEngine.Quote(cmd.Address().Zip(), basket.Subtotal())

	aggregate, err := order.NewOrder(cmd.OrderID(), basket, cmd.Address(),
		quote, cmd.IDDocumentRef(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, aggregate.Events())
	aggregate.ClearEvents()

	return nil
}

func (h *CreateOrderCommandHandler) buildCart(
	ctx context.Context,
	products ports.ProductRepository,
	items []OrderItem,
) (*cart.Cart, error) {
	basket := cart.NewCart()

	for _, item := range items {
		catalogEntry, err := products.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(catalogEntry.ID(), catalogEntry.Name(),
			item.Quantity(), catalogEntry.Price(), item.Variant())
		if err != nil {
			return nil, err
		}

		basket.Add(line)
	}

	return basket, nil
}
