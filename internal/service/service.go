package service

import (
	"context"

	"scan-kart/internal/checkout"
	"scan-kart/internal/model"
)

// ProductService defines operations for barcode lookups.
type ProductService interface {
	// Scan resolves a barcode to a product with its tax-inclusive prices.
	Scan(ctx context.Context, barcode string) (*model.ScanResponse, error)
}

// CartService defines operations on the terminal's cart.
type CartService interface {
	// Get returns the cart contents and totals.
	Get(ctx context.Context) (*model.CartResponse, error)

	// AddByBarcode looks up a barcode and adds one unit at its tax-inclusive price.
	AddByBarcode(ctx context.Context, barcode string) (*model.CartResponse, error)

	// UpdateQuantity sets the quantity of a line; zero or less removes it.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (*model.CartResponse, error)

	// Remove deletes a line.
	Remove(ctx context.Context, productID int64) (*model.CartResponse, error)

	// Clear empties the cart.
	Clear(ctx context.Context) (*model.CartResponse, error)
}

// CheckoutService defines operations on the checkout process.
type CheckoutService interface {
	Start(ctx context.Context) (checkout.Snapshot, error)
	Status() checkout.Snapshot
	Cancel() (checkout.Snapshot, error)
	Acknowledge() (checkout.Snapshot, error)
}

// OrderService defines read access to the order history.
type OrderService interface {
	// List returns past orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
}

// AuthService defines the operator account operations.
type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) error
	Signup(ctx context.Context, req *model.SignupRequest) error
	Logout()
}
