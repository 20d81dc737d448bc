// Package pricing holds the money arithmetic for products and cart lines.
package pricing

import (
	"scan-kart/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceWithVAT returns the tax-inclusive unit price of a product.
// A product without a VAT rate is priced untaxed.
func PriceWithVAT(p model.Product) decimal.Decimal {
	price := decimal.NewFromFloat(p.UnitPriceUntaxed)
	if p.VATRate == nil {
		return price
	}
	rate := decimal.NewFromFloat(p.VATRate.Rate)
	return price.Mul(decimal.NewFromInt(1).Add(rate.Div(hundred)))
}

// LineTotal returns the untaxed price of the scanned weight of a product.
func LineTotal(p model.Product) decimal.Decimal {
	return decimal.NewFromFloat(p.UnitPriceUntaxed).Mul(decimal.NewFromFloat(p.Weight))
}

// LineTotalWithVAT returns the tax-inclusive price of the scanned weight.
func LineTotalWithVAT(p model.Product) decimal.Decimal {
	return PriceWithVAT(p).Mul(decimal.NewFromFloat(p.Weight))
}

// ItemTotal returns unit_price_at_sale × weight × quantity for one cart line.
func ItemTotal(item model.CartItem) decimal.Decimal {
	return decimal.NewFromFloat(item.UnitPriceAtSale).
		Mul(decimal.NewFromFloat(item.Product.Weight)).
		Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// CartTotal sums ItemTotal over all items.
func CartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemTotal(item))
	}
	return total
}

// TotalQuantity sums the quantities of all items.
func TotalQuantity(items []model.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Round2 rounds an amount to cents, for display.
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
