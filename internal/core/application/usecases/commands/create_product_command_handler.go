package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for catalog additions.
// Creates new products with a creation timestamp and persists them
// transactionally.
//
// Example:
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	cmd, _ := NewCreateProductCommand(kernel.NewUUID(), "Gelato 41", "", price, "Hybrid", "3.5g", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product creation failed: %w", err)
//	}
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Uses a transaction to ensure the product is properly persisted or rolled
// back on error.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.StrainType(), cmd.Size(), cmd.ImageURL(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
