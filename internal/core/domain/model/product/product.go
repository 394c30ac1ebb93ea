package product

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"
	"caisse/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	ErrProductIDIsRequired   = errs.NewValueIsRequiredError("product id")
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product is an immutable catalog entry: the reference data a cart line
// points at. The register does not own the catalog; products arrive from
// the outside and are copied wholesale into carts and order snapshots, so a
// later catalog change never alters an existing order.
//
// Product is a value object: two products with the same id are considered
// the same catalog entry.
type Product struct { //nolint:recvcheck //using for validation
	id       string
	name     string
	price    kernel.Money
	category string
	vatRate  kernel.VatRate
	image    string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog entry. The id and name are
// required; the image reference may be empty. The VAT rate must belong to
// the enumerated rate set.
func NewProduct(
	id string,
	name string,
	price kernel.Money,
	category string,
	vatRate kernel.VatRate,
	image string,
) (Product, error) {
	p := Product{
		price:    price,
		category: category,
		image:    image,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setVatRate(vatRate),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the unique catalog identifier.
func (p Product) ID() string {
	return p.id
}

// Name returns the display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// Category returns the catalog category tag.
func (p Product) Category() string {
	return p.category
}

// VatRate returns the tax rate applied to this product.
func (p Product) VatRate() kernel.VatRate {
	return p.vatRate
}

// Image returns the image reference, possibly empty.
func (p Product) Image() string {
	return p.image
}

// IsEqual compares two products by their catalog identifiers.
func (p Product) IsEqual(other Product) bool {
	return p.id == other.id
}

func (p *Product) setID(id string) error {
	if id == "" {
		return ErrProductIDIsRequired
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setVatRate(rate kernel.VatRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	p.vatRate = rate
	return nil
}
