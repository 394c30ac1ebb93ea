package product

import (
	"caisse/internal/core/domain/model/kernel"
)

// Catalog is a read-only collection of products with lookup by id.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog builds a catalog from the given products, preserving order.
// Products failing validation are skipped.
func NewCatalog(products ...Product) Catalog {
	c := Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			continue
		}
		if _, exists := c.byID[p.ID()]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID()] = p
	}
	return c
}

// All returns the catalog entries in their original order.
func (c Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks up a product by its catalog identifier.
func (c Catalog) Find(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.products)
}

// DefaultCatalog returns the built-in café menu: hot drinks, cold drinks
// and pastries. Food items carry the 7% rate, sodas 18%.
func DefaultCatalog() Catalog {
	entries := []struct {
		id       string
		name     string
		millimes int64
		category string
		percent  int
	}{
		{"1", "Café Expresso", 3500, "chaud", 7},
		{"2", "Café Crème", 4000, "chaud", 7},
		{"3", "Thé à la Menthe", 5000, "chaud", 7},
		{"4", "Cappuccino", 6000, "chaud", 7},
		{"5", "Jus d'Orange", 5000, "froid", 7},
		{"6", "Eau Minérale", 2000, "froid", 7},
		{"7", "Soda Citron", 4000, "froid", 18},
		{"8", "Croissant", 3000, "patisserie", 7},
		{"9", "Pain au Chocolat", 3500, "patisserie", 7},
		{"10", "Éclair au Chocolat", 6000, "patisserie", 7},
		{"11", "Mille-feuille", 7000, "patisserie", 7},
		{"12", "Tarte aux Pommes", 8000, "patisserie", 7},
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		price, err := kernel.NewMoneyFromMillimes(e.millimes)
		if err != nil {
			continue
		}
		rate, err := kernel.NewVatRate(e.percent)
		if err != nil {
			continue
		}
		p, err := NewProduct(e.id, e.name, price, e.category, rate, "")
		if err != nil {
			continue
		}
		products = append(products, p)
	}

	return NewCatalog(products...)
}
