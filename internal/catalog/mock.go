package catalog

import (
	"context"
	"time"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

// mockLookup serves products from a fixed in-memory table after a simulated
// network latency.
type mockLookup struct {
	products map[string]model.Product
	latency  time.Duration
	logger   zerolog.Logger
}

// NewMockLookup creates a lookup over the demo product table.
func NewMockLookup(latency time.Duration, logger zerolog.Logger) Lookup {
	return NewTableLookup(DemoProducts(), latency, logger)
}

// NewTableLookup creates a lookup over the given products, keyed by barcode.
func NewTableLookup(products []model.Product, latency time.Duration, logger zerolog.Logger) Lookup {
	table := make(map[string]model.Product, len(products))
	for _, p := range products {
		table[p.Barcode] = p
	}
	return &mockLookup{
		products: table,
		latency:  latency,
		logger:   logger.With().Str("component", "mock-catalog").Logger(),
	}
}

func (l *mockLookup) FetchProduct(ctx context.Context, barcode string) (*model.Product, error) {
	if l.latency > 0 {
		timer := time.NewTimer(l.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	p, ok := l.products[barcode]
	if !ok {
		l.logger.Debug().Str("barcode", barcode).Msg("product not found in mock table")
		return nil, model.ErrProductNotFound
	}

	product := p.Clone()
	return &product, nil
}

// DemoProducts returns the demo catalogue used by the mock lookup.
func DemoProducts() []model.Product {
	produce := model.Category{ID: 1, Label: "Fruits & Légumes", Weighable: true}
	bakery := model.Category{ID: 2, Label: "Boulangerie", Weighable: false}
	dairy := model.Category{ID: 3, Label: "Crémerie", Weighable: true}
	reduced := model.VATRate{ID: 1, Rate: 5.5}

	build := func(id int64, label, barcode string, price, weight float64, inventory int, cat model.Category) model.Product {
		c, v, inv := cat, reduced, inventory
		return model.Product{
			ID:               id,
			Label:            label,
			UnitPriceUntaxed: price,
			Weight:           weight,
			Barcode:          barcode,
			Inventory:        &inv,
			Category:         &c,
			VATRate:          &v,
		}
	}

	return []model.Product{
		build(1, "Tomates Grappe Bio", "3560070010234", 3.50, 0.250, 45, produce),
		build(2, "Pommes Golden", "3760123456789", 2.99, 0.500, 120, produce),
		build(3, "Carottes Bio", "3250392001234", 4.20, 0.750, 80, produce),
		build(4, "Pain de Campagne", "8712345678901", 2.50, 0.400, 30, bakery),
		build(5, "Fromage Comté AOP", "4567890123456", 18.90, 0.200, 25, dairy),
	}
}
