package service

import (
	"context"

	"scan-kart/internal/checkout"
	"scan-kart/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockLookup is a mock implementation of catalog.Lookup.
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) FetchProduct(ctx context.Context, barcode string) (*model.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockCartStore is a mock implementation of CartStore.
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) WaitReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartStore) AddToCart(ctx context.Context, product model.Product, unitPriceAtSale float64) error {
	args := m.Called(ctx, product, unitPriceAtSale)
	return args.Error(0)
}

func (m *MockCartStore) RemoveFromCart(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockCartStore) ClearCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartStore) Items() []model.CartItem {
	args := m.Called()
	return args.Get(0).([]model.CartItem)
}

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Scan(ctx context.Context, barcode string) (*model.ScanResponse, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScanResponse), args.Error(1)
}

// MockCheckoutProcess is a mock implementation of CheckoutProcess.
type MockCheckoutProcess struct {
	mock.Mock
}

func (m *MockCheckoutProcess) Start(ctx context.Context) (checkout.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

func (m *MockCheckoutProcess) Snapshot() checkout.Snapshot {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot)
}

func (m *MockCheckoutProcess) Cancel() (checkout.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

func (m *MockCheckoutProcess) Acknowledge() (checkout.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

// MockHistory is a mock implementation of history.Repository.
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockHistory) Prepend(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockAuthenticator is a mock implementation of Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthenticator) Signup(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthenticator) Logout() {
	m.Called()
}
