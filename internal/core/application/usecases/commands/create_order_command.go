package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is a single cart selection submitted at checkout: a catalog
// product reference, a quantity, and an optional variant choice. Prices are
// never submitted; the handler resolves them from the catalog.
type OrderItem struct {
	productID kernel.UUID
	quantity  int
	variant   *cart.Variant
}

// NewOrderItem creates a checkout selection with validation.
// Quantity must be at least one; variant may be nil for products sold without
// variants.
func NewOrderItem(productID kernel.UUID, quantity int, variant *cart.Variant) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity < 1 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	item := OrderItem{productID: productID, quantity: quantity}
	if variant != nil {
		v := *variant
		item.variant = &v
	}

	return item, nil
}

// ProductID returns the catalog product reference.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Variant returns a copy of the variant choice, nil when none was selected.
func (i OrderItem) Variant() *cart.Variant {
	if i.variant == nil {
		return nil
	}
	v := *i.variant
	return &v
}

// CreateOrderCommand represents a checkout request: the customer's selected
// items, contact and delivery address, and the reference to their uploaded
// ID document.
//
// Example:
//
//	item, _ := NewOrderItem(productID, 2, nil)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []OrderItem{item}, address, "uploads/id-123.png")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, quoteEngine, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	items         []OrderItem
	address       order.Address
	idDocumentRef string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, at least one item is present, the
// address is constructed, and the ID-document reference is not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	items []OrderItem,
	address order.Address,
	idDocumentRef string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
		orderCommand.setAddress(address),
		orderCommand.setIDDocumentRef(idDocumentRef),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns a copy of the submitted checkout selections.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

// Address returns the customer contact and delivery address.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// IDDocumentRef returns the opaque reference to the uploaded ID document.
func (c CreateOrderCommand) IDDocumentRef() string {
	return c.idDocumentRef
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setIDDocumentRef(idDocumentRef string) error {
	if idDocumentRef == "" {
		return errs.NewValueIsRequiredError("idDocumentRef")
	}

	c.idDocumentRef = idDocumentRef
	return nil
}
