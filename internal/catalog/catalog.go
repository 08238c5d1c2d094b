// internal/catalog/catalog.go
package catalog

import "github.com/novamart/storefront-state/internal/models"

// Catalog is the seeded, read-only product/category reference data the
// storefront renders. It is not a collection store: nothing mutates it after
// construction, and reads copy out.
type Catalog struct {
	products   []models.Product
	categories []models.Category
}

func New() *Catalog {
	return &Catalog{
		products:   seedProducts(),
		categories: seedCategories(),
	}
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics", Image: "/images/categories/electronics.jpg", ProductCount: 3},
		{ID: "fashion", Name: "Fashion", Image: "/images/categories/fashion.jpg", ProductCount: 2},
		{ID: "home", Name: "Home & Living", Image: "/images/categories/home.jpg", ProductCount: 2},
		{ID: "beauty", Name: "Beauty", Image: "/images/categories/beauty.jpg", ProductCount: 1},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "P-1001",
			Name:        "Aurora Wireless Headphones",
			Price:       129.99,
			Image:       "/images/products/aurora-headphones.jpg",
			Category:    "electronics",
			Description: "Over-ear wireless headphones with 40h battery life.",
			Stock:       42,
			Rating:      4.6,
			ReviewCount: 318,
		},
		{
			ID:          "P-1002",
			Name:        "Nova Smart Watch",
			Price:       199.00,
			Image:       "/images/products/nova-watch.jpg",
			Category:    "electronics",
			Description: "Fitness tracking, notifications and a week of battery.",
			Stock:       17,
			Rating:      4.3,
			ReviewCount: 204,
		},
		{
			ID:          "P-1003",
			Name:        "Pulse Bluetooth Speaker",
			Price:       59.50,
			Image:       "/images/products/pulse-speaker.jpg",
			Category:    "electronics",
			Stock:       88,
			Rating:      4.1,
			ReviewCount: 97,
		},
		{
			ID:       "P-2001",
			Name:     "Harbor Cotton Tee",
			Price:    24.00,
			Image:    "/images/products/harbor-tee.jpg",
			Category: "fashion",
			// Variant stock is authoritative here; the flat field stays zero.
			Variants: []models.Variant{
				{
					Name: "Size",
					Options: []models.VariantOption{
						{Name: "S", Stock: 12},
						{Name: "M", Stock: 20},
						{Name: "L", Stock: 15},
						{Name: "XL", Stock: 6, PriceModifier: 2.00},
					},
				},
			},
			Rating:      4.8,
			ReviewCount: 542,
		},
		{
			ID:       "P-2002",
			Name:     "Drift Denim Jacket",
			Price:    89.90,
			Image:    "/images/products/drift-jacket.jpg",
			Category: "fashion",
			Variants: []models.Variant{
				{
					Name: "Size",
					Options: []models.VariantOption{
						{Name: "M", Stock: 9},
						{Name: "L", Stock: 4},
					},
				},
			},
			Rating:      4.4,
			ReviewCount: 76,
		},
		{
			ID:          "P-3001",
			Name:        "Ember Ceramic Mug Set",
			Price:       34.00,
			Image:       "/images/products/ember-mugs.jpg",
			Category:    "home",
			Stock:       61,
			Rating:      4.7,
			ReviewCount: 129,
		},
		{
			ID:          "P-3002",
			Name:        "Linen Throw Blanket",
			Price:       49.00,
			Image:       "/images/products/linen-throw.jpg",
			Category:    "home",
			Stock:       23,
			Rating:      4.5,
			ReviewCount: 58,
		},
		{
			ID:          "P-4001",
			Name:        "Calma Facial Serum",
			Price:       27.50,
			Image:       "/images/products/calma-serum.jpg",
			Category:    "beauty",
			Stock:       140,
			Rating:      4.2,
			ReviewCount: 211,
		},
	}
}
