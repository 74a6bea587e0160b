package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove an item from the
// catalog. Existing orders are unaffected because their lines are snapshots.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove a catalog entry.
// Validates that the product ID is valid.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	productCommand := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteProductCommandIsNotConstructed if validation fails.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
