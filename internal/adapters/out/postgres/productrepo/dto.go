// Package productrepo provides data transfer objects and mapping functions for
// catalog persistence. It implements the repository pattern for the product
// aggregate, handling the conversion between domain entities and database
// representations.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Prices are stored as numeric to keep decimal precision.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StrainType  string
	Size        string
	ImageURL    string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		StrainType:  aggregate.StrainType(),
		Size:        aggregate.Size(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price,
		dto.StrainType, dto.Size, dto.ImageURL, dto.CreatedAt)
}
