// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations, including the snapshotted line items and the attached
// delivery quote.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer address and delivery quote are embedded; line items live in a
// child table. The version column is the optimistic concurrency token.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Address       AddressDTO      `gorm:"embedded"`
	Quote         QuoteDTO        `gorm:"embedded;embeddedPrefix:quote_"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        int             `gorm:"index"`
	PaymentRef    *string
	IDDocumentRef string    `gorm:"not null"`
	Version       int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded customer contact and delivery address.
type AddressDTO struct {
	CustomerName string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	AddressLine1 string `gorm:"not null"`
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	Zip          string `gorm:"not null;index"`
	Email        string
	Dob          time.Time `gorm:"not null"`
}

// QuoteDTO represents the embedded delivery quote captured at checkout.
type QuoteDTO struct {
	TierName      string
	Fee           decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinOrder      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DistanceMiles int
	Allowed       bool
	Reason        string
}

// OrderLineDTO represents one snapshotted line item of an order.
type OrderLineDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	ProductName     string    `gorm:"not null"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	VariantName     string
	VariantCategory string
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()
	quote := aggregate.Quote()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lineDTO := OrderLineDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Decimal(),
		}
		if variant := line.Variant(); variant != nil {
			lineDTO.VariantName = variant.Name
			lineDTO.VariantCategory = variant.Category
		}
		lines = append(lines, lineDTO)
	}

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Address: AddressDTO{
			CustomerName: address.Name(),
			Phone:        address.Phone(),
			AddressLine1: address.Line1(),
			City:         address.City(),
			State:        address.State(),
			Zip:          address.Zip(),
			Email:        address.Email(),
			Dob:          address.DOB(),
		},
		Quote: QuoteDTO{
			TierName:      quote.TierName(),
			Fee:           quote.Fee().Decimal(),
			MinOrder:      quote.MinOrder().Decimal(),
			DistanceMiles: quote.DistanceMiles(),
			Allowed:       quote.Allowed(),
			Reason:        quote.Reason(),
		},
		Subtotal:      aggregate.Subtotal().Decimal(),
		Total:         aggregate.Total().Decimal(),
		Status:        int(aggregate.Status()),
		PaymentRef:    aggregate.PaymentRef(),
		IDDocumentRef: aggregate.IDDocumentRef(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including address, quote, and line
// snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Address.CustomerName, dto.Address.Phone,
		dto.Address.AddressLine1, dto.Address.City, dto.Address.State,
		dto.Address.Zip, dto.Address.Email, dto.Address.Dob)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.Quote.Fee)
	if err != nil {
		return nil, err
	}
	minOrder, err := kernel.NewMoney(dto.Quote.MinOrder)
	if err != nil {
		return nil, err
	}
	quote, err := delivery.RestoreQuote(dto.Address.Zip, dto.Quote.TierName,
		fee, minOrder, dto.Quote.DistanceMiles, dto.Quote.Allowed, dto.Quote.Reason)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, lines, address, quote, subtotal, total,
		order.Status(dto.Status), dto.CreatedAt, dto.PaymentRef,
		dto.IDDocumentRef, dto.Version)
}

func lineToDomain(dto OrderLineDTO) (cart.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return cart.Line{}, err
	}

	var variant *cart.Variant
	if dto.VariantName != "" || dto.VariantCategory != "" {
		variant = &cart.Variant{Name: dto.VariantName, Category: dto.VariantCategory}
	}

	return cart.NewLine(productID, dto.ProductName, dto.Quantity, unitPrice, variant)
}
