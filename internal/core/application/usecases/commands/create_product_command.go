package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a new item to the catalog.
// Encapsulates the product's display name, price, and optional merchandising
// attributes.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("34.99")
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(),
//	    "Purple Runtz THCA Flower", "Top-shelf indoor flower", price,
//	    "Hybrid", "3.5g", "https://cdn.example.com/purple-runtz.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	strainType  string
	size        string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog entry.
// Validates that the product ID is valid and the name is not empty.
// Description, strain type, size, and image URL are optional.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price kernel.Money,
	strainType, size, imageURL string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		price:       price,
		strainType:  strainType,
		size:        size,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional description text.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// StrainType returns the optional strain classification.
func (c CreateProductCommand) StrainType() string {
	return c.strainType
}

// Size returns the optional package size label.
func (c CreateProductCommand) Size() string {
	return c.size
}

// ImageURL returns the optional product image location.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
