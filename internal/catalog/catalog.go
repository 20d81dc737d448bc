// Package catalog resolves scanned barcodes to products. The implementation
// (mock table or remote catalogue) is chosen when the service is composed.
package catalog

import (
	"context"

	"scan-kart/internal/model"
)

// Lookup fetches product information for a barcode.
type Lookup interface {
	// FetchProduct returns the product for barcode, model.ErrProductNotFound
	// when the catalogue has no such product, or a transport error.
	FetchProduct(ctx context.Context, barcode string) (*model.Product, error)
}
