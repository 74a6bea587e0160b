package product

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item available in the storefront.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Price is non-negative (enforced by kernel.Money)
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	strainType  string
	size        string
	imageURL    string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a new catalog item with validation.
// Strain type, size, and image URL are optional merchandising attributes
// and may be empty.
func NewProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	strainType, size, imageURL string,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		strainType:    strainType,
		size:          size,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	p.price = price

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
// Applies the same validation as NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	strainType, size, imageURL string,
	createdAt time.Time,
) (*Product, error) {
	return NewProduct(id, name, description, price, strainType, size, imageURL, createdAt)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description text.
func (p *Product) Description() string {
	return p.description
}

// Price returns the product's unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StrainType returns the strain classification (Indica, Sativa, Hybrid),
// empty for non-flower products.
func (p *Product) StrainType() string {
	return p.strainType
}

// Size returns the package size label, e.g. "3.5g".
func (p *Product) Size() string {
	return p.size
}

// ImageURL returns the product image location for the catalog UI.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// CreatedAt returns when the product was added to the catalog.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
