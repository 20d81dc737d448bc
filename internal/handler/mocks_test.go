package handler

import (
	"context"

	"scan-kart/internal/checkout"
	"scan-kart/internal/model"

	"github.com/stretchr/testify/mock"
)

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

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) result(args mock.Arguments) (*model.CartResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context) (*model.CartResponse, error) {
	return m.result(m.Called(ctx))
}

func (m *MockCartService) AddByBarcode(ctx context.Context, barcode string) (*model.CartResponse, error) {
	return m.result(m.Called(ctx, barcode))
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*model.CartResponse, error) {
	return m.result(m.Called(ctx, productID, quantity))
}

func (m *MockCartService) Remove(ctx context.Context, productID int64) (*model.CartResponse, error) {
	return m.result(m.Called(ctx, productID))
}

func (m *MockCartService) Clear(ctx context.Context) (*model.CartResponse, error) {
	return m.result(m.Called(ctx))
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Start(ctx context.Context) (checkout.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

func (m *MockCheckoutService) Status() checkout.Snapshot {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot)
}

func (m *MockCheckoutService) Cancel() (checkout.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

func (m *MockCheckoutService) Acknowledge() (checkout.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(checkout.Snapshot), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) Signup(ctx context.Context, req *model.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) Logout() {
	m.Called()
}
