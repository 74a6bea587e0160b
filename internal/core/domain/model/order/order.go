package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// MinimumCustomerAge is the age gate for placing an order, in whole years.
const MinimumCustomerAge = 21

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order in the storefront. It is the aggregate
// root managing the lifecycle from creation through delivery or cancellation.
//
// Order follows these invariants:
//   - Created only from a non-empty cart with an allowed delivery quote,
//     a constructed address, an ID-document attachment, and a customer
//     aged MinimumCustomerAge or older on the creation date
//   - Line items are a snapshot of the cart at creation time; prices and
//     quantities are frozen and independent of later catalog changes
//   - Total equals cart subtotal plus the quote's delivery fee
//   - Status changes only through Advance, ConfirmPayment, and Cancel
//   - Orders are never deleted, only terminally marked cancelled
//
// Each effective transition bumps the aggregate version (used by the
// persistence layer for optimistic concurrency) and records a
// StatusChangedEvent for post-commit publication.
type Order struct {
	id            kernel.UUID
	lines         []cart.Line
	address       Address
	quote         delivery.Quote
	subtotal      kernel.Money
	total         kernel.Money
	status        Status
	createdAt     time.Time
	paymentRef    *string
	idDocumentRef string
	version       int

	events        []StatusChangedEvent
	isConstructed bool
}

// NewOrder creates a new Order from the current cart contents.
//
// The cart is snapshotted: mutating it after creation does not alter the
// order. Returns a validation error (errs.ErrValueIsRequired or
// errs.ErrValueIsInvalid) if the quote is disallowed, the cart is empty,
// the address is incomplete, the ID-document reference is missing, or the
// customer is under the minimum age on createdAt.
func NewOrder(
	id kernel.UUID,
	c *cart.Cart,
	address Address,
	quote delivery.Quote,
	idDocumentRef string,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if c == nil || c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if !quote.Allowed() {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery quote",
			fmt.Errorf("delivery is not available: %s", quote.Reason()))
	}
	if idDocumentRef == "" {
		return nil, errs.NewValueIsRequiredError("ID document")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if age := address.AgeOn(createdAt); age < MinimumCustomerAge {
		return nil, errs.NewValueIsInvalidErrorWithCause("date of birth",
			fmt.Errorf("customer must be %d or older", MinimumCustomerAge))
	}

	subtotal := c.Subtotal()
	o := &Order{
		id:            id,
		lines:         c.Lines(),
		address:       address,
		quote:         quote,
		subtotal:      subtotal,
		total:         subtotal.Add(quote.Fee()),
		status:        Pending,
		createdAt:     createdAt,
		idDocumentRef: idDocumentRef,
		version:       1,
		isConstructed: true,
	}
	o.recordEvent(Unknown, Pending)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// No domain events are recorded; the restored order reflects durable state.
func RestoreOrder(
	id kernel.UUID,
	lines []cart.Line,
	address Address,
	quote delivery.Quote,
	subtotal, total kernel.Money,
	status Status,
	createdAt time.Time,
	paymentRef *string,
	idDocumentRef string,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), address.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	return &Order{
		id:            id,
		lines:         append([]cart.Line(nil), lines...),
		address:       address,
		quote:         quote,
		subtotal:      subtotal,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		paymentRef:    paymentRef,
		idDocumentRef: idDocumentRef,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from external input to prevent bypassing
// the factory functions.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lines returns a copy of the snapshotted line items.
func (o *Order) Lines() []cart.Line {
	return append([]cart.Line(nil), o.lines...)
}

// Address returns the customer contact and delivery address.
func (o *Order) Address() Address {
	return o.address
}

// Quote returns the delivery quote attached at creation time.
func (o *Order) Quote() delivery.Quote {
	return o.quote
}

// Subtotal returns the snapshotted cart subtotal.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentRef returns the payment provider's charge reference.
// Nil until payment has been captured.
func (o *Order) PaymentRef() *string {
	return o.paymentRef
}

// IDDocumentRef returns the opaque reference to the customer's uploaded
// identity document. The content is never interpreted; only its presence is
// a creation precondition.
func (o *Order) IDDocumentRef() string {
	return o.idDocumentRef
}

// Version returns the aggregate version used for optimistic concurrency.
// It starts at 1 and is bumped on every effective transition.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the order one step forward in the fulfillment sequence.
// Returns an InvalidTransitionError when the order is terminal.
func (o *Order) Advance() error {
	next, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.transition(next)
	return nil
}

// ConfirmPayment records a successful payment capture and moves the order
// from pending to confirmed. The charge reference must be non-empty.
// Returns an InvalidTransitionError if the order is not pending: payment can
// only confirm an order once, and a declined charge never reaches this method.
func (o *Order) ConfirmPayment(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	if o.status != Pending {
		return errs.NewInvalidTransitionError(o.status.String(), Confirmed.String())
	}

	o.paymentRef = &reference
	o.transition(Confirmed)
	return nil
}

// Cancel moves a non-terminal order to cancelled.
// Idempotent on an already-cancelled order: no event is recorded and the
// version is unchanged. Returns an InvalidTransitionError on a delivered order.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return nil
	}

	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.transition(next)
	return nil
}

// Events returns the status-changed events recorded since construction or the
// last ClearEvents call.
func (o *Order) Events() []StatusChangedEvent {
	return append([]StatusChangedEvent(nil), o.events...)
}

// ClearEvents discards recorded events, typically after publication.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) transition(next Status) {
	from := o.status
	o.status = next
	o.version++
	o.recordEvent(from, next)
}

func (o *Order) recordEvent(from, to Status) {
	o.events = append(o.events, StatusChangedEvent{
		OrderID:    o.id,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	})
}
