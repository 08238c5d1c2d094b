// internal/models/product.go
package models

// VariantOption is a single selectable option within a variant (e.g. size "M"),
// with its own stock count and an optional price adjustment.
type VariantOption struct {
	Name          string  `json:"name"`
	Stock         int     `json:"stock"`
	PriceModifier float64 `json:"price_modifier,omitempty"`
}

// Variant groups a set of options under a named axis (e.g. "Size", "Color").
type Variant struct {
	Name    string          `json:"name"`
	Options []VariantOption `json:"options"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Stock       int       `json:"stock,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int64     `json:"review_count,omitempty"`
}

// Key returns the product id; satisfies store.Record.
func (p Product) Key() string { return p.ID }

// SellableStock resolves the product's sellable quantity. When variants are
// present the sum of their option stocks is authoritative and the flat Stock
// field is ignored; the two are never reconciled in place.
func (p Product) SellableStock() int {
	if len(p.Variants) == 0 {
		return p.Stock
	}
	total := 0
	for _, v := range p.Variants {
		for _, o := range v.Options {
			total += o.Stock
		}
	}
	return total
}

// Clone returns a deep copy so stores can hand products out by value.
func (p Product) Clone() Product {
	out := p
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		for i, v := range p.Variants {
			cv := v
			cv.Options = append([]VariantOption(nil), v.Options...)
			out.Variants[i] = cv
		}
	}
	return out
}

// CartItem is a product plus the quantity being purchased. Quantity is
// always >= 1; a zero-quantity line never enters an order.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (ci CartItem) Clone() CartItem {
	return CartItem{Product: ci.Product.Clone(), Quantity: ci.Quantity}
}
