package model

// Product represents a catalogue product as returned by a barcode lookup.
// Prices are per kilogram and weights are in kilograms.
type Product struct {
	ID               int64     `json:"product_id"`
	Label            string    `json:"label"`
	UnitPriceUntaxed float64   `json:"unit_price_untaxed"`
	Weight           float64   `json:"weight"`
	Barcode          string    `json:"barcode,omitempty"`
	Inventory        *int      `json:"inventory,omitempty"`
	Category         *Category `json:"category,omitempty"`
	VATRate          *VATRate  `json:"vat_rate,omitempty"`
}

// Category groups products and tells whether they are sold by weight.
type Category struct {
	ID        int64  `json:"category_id"`
	Label     string `json:"label"`
	Weighable bool   `json:"weighable"`
}

// VATRate is a tax rate expressed as a percentage.
type VATRate struct {
	ID   int64   `json:"vat_id"`
	Rate float64 `json:"rate"`
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	c := p
	if p.Inventory != nil {
		inv := *p.Inventory
		c.Inventory = &inv
	}
	if p.Category != nil {
		cat := *p.Category
		c.Category = &cat
	}
	if p.VATRate != nil {
		vat := *p.VATRate
		c.VATRate = &vat
	}
	return c
}

// Weighable reports whether the product is sold by weight.
func (p Product) Weighable() bool {
	return p.Category != nil && p.Category.Weighable
}
