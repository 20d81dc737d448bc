package service

import (
	"context"
	"errors"
	"fmt"

	"scan-kart/internal/model"
	"scan-kart/internal/pricing"

	"github.com/rs/zerolog"
)

// CartStore is the cart state the service operates on.
type CartStore interface {
	WaitReady(ctx context.Context) error
	AddToCart(ctx context.Context, product model.Product, unitPriceAtSale float64) error
	RemoveFromCart(ctx context.Context, productID int64) error
	UpdateQuantity(ctx context.Context, productID int64, quantity int) error
	ClearCart(ctx context.Context) error
	Items() []model.CartItem
}

// cartService implements CartService.
type cartService struct {
	store    CartStore
	products ProductService
	logger   zerolog.Logger
}

// NewCartService creates a new cart service. Barcodes are resolved through
// products.
func NewCartService(store CartStore, products ProductService, logger zerolog.Logger) CartService {
	return &cartService{
		store:    store,
		products: products,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the cart contents and totals.
func (s *cartService) Get(ctx context.Context) (*model.CartResponse, error) {
	if err := s.store.WaitReady(ctx); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.response(), nil
}

// AddByBarcode looks up a barcode and adds one unit at its tax-inclusive price.
func (s *cartService) AddByBarcode(ctx context.Context, barcode string) (*model.CartResponse, error) {
	scan, err := s.products.Scan(ctx, barcode)
	if err != nil {
		return nil, err
	}
	product := scan.Product

	price := pricing.PriceWithVAT(product).InexactFloat64()
	if err := s.store.AddToCart(ctx, product, price); err != nil {
		return nil, s.mutationError(err, "add to cart", product.ID)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Float64("unit_price_at_sale", price).
		Msg("product added")

	return s.response(), nil
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*model.CartResponse, error) {
	if productID <= 0 {
		return nil, model.ErrInvalidProductID
	}
	if err := s.store.UpdateQuantity(ctx, productID, quantity); err != nil {
		return nil, s.mutationError(err, "update quantity", productID)
	}
	return s.response(), nil
}

// Remove deletes a line.
func (s *cartService) Remove(ctx context.Context, productID int64) (*model.CartResponse, error) {
	if productID <= 0 {
		return nil, model.ErrInvalidProductID
	}
	if err := s.store.RemoveFromCart(ctx, productID); err != nil {
		return nil, s.mutationError(err, "remove from cart", productID)
	}
	return s.response(), nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) (*model.CartResponse, error) {
	if err := s.store.ClearCart(ctx); err != nil {
		return nil, s.mutationError(err, "clear cart", 0)
	}
	return s.response(), nil
}

func (s *cartService) mutationError(err error, op string, productID int64) error {
	if errors.Is(err, model.ErrCartLocked) {
		s.logger.Warn().Str("op", op).Int64("product_id", productID).Msg("cart is locked")
		return err
	}
	s.logger.Error().Err(err).Str("op", op).Int64("product_id", productID).Msg("cart mutation failed")
	return fmt.Errorf("failed to %s: %w", op, err)
}

// response derives both totals from a single snapshot so they always agree
// with the returned lines.
func (s *cartService) response() *model.CartResponse {
	items := s.store.Items()

	return &model.CartResponse{
		Items:      items,
		TotalPrice: pricing.Round2(pricing.CartTotal(items)),
		TotalItems: pricing.TotalQuantity(items),
	}
}
