package service

import (
	"context"
	"errors"
	"strings"

	"scan-kart/internal/catalog"
	"scan-kart/internal/model"
	"scan-kart/internal/pricing"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	lookup catalog.Lookup
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(lookup catalog.Lookup, logger zerolog.Logger) ProductService {
	return &productService{
		lookup: lookup,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Scan resolves a barcode. A catalogue miss returns model.ErrProductNotFound;
// any other lookup failure returns model.ErrLookupFailed so the customer can
// scan again.
func (s *productService) Scan(ctx context.Context, barcode string) (*model.ScanResponse, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, model.ErrMissingBarcode
	}

	product, err := s.lookup.FetchProduct(ctx, barcode)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Str("barcode", barcode).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("barcode", barcode).Msg("failed to look up product")
		return nil, model.ErrLookupFailed
	}

	if product == nil {
		s.logger.Debug().Str("barcode", barcode).Msg("catalogue returned no product")
		return nil, model.ErrProductNotFound
	}

	s.logger.Debug().
		Str("barcode", barcode).
		Int64("product_id", product.ID).
		Str("label", product.Label).
		Msg("product scanned")

	return &model.ScanResponse{
		Product:          *product,
		Weighable:        product.Weighable(),
		PriceWithVAT:     pricing.Round2(pricing.PriceWithVAT(*product)),
		LineTotal:        pricing.Round2(pricing.LineTotalWithVAT(*product)),
		LineTotalUntaxed: pricing.Round2(pricing.LineTotal(*product)),
	}, nil
}
