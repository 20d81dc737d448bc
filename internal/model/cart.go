package model

import "time"

// CartItem is one product line in the cart. The product is a snapshot taken
// at scan time and UnitPriceAtSale is the tax-inclusive price locked in when
// the product was first added.
type CartItem struct {
	Product         Product   `json:"product"`
	Quantity        int       `json:"quantity"`
	UnitPriceAtSale float64   `json:"unit_price_at_sale"`
	AddedAt         time.Time `json:"addedAt"`
}

// Clone returns a deep copy of the item.
func (i CartItem) Clone() CartItem {
	c := i
	c.Product = i.Product.Clone()
	return c
}

// CloneItems deep-copies a slice of cart items. A nil slice yields an empty one.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// AddItemRequest is the payload for adding a scanned product to the cart.
type AddItemRequest struct {
	Barcode string `json:"barcode"`
}

// UpdateQuantityRequest is the payload for changing a cart line quantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// CartResponse is the cart view returned by the API.
type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	TotalItems int        `json:"totalItems"`
}
