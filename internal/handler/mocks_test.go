package handler

import (
	"context"
	"sync"

	"lojinha/internal/cart"
	"lojinha/internal/model"
	"lojinha/internal/service"
	"lojinha/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, product *model.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) SetSold(ctx context.Context, id string, sold bool) error {
	args := m.Called(ctx, id, sold)
	return args.Error(0)
}

// MockBannerService is a mock implementation of service.BannerService.
type MockBannerService struct {
	mock.Mock
}

func (m *MockBannerService) Visible(ctx context.Context) ([]model.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Banner), args.Error(1)
}

func (m *MockBannerService) List(ctx context.Context) ([]model.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Banner), args.Error(1)
}

func (m *MockBannerService) Create(ctx context.Context, banner *model.Banner) (string, error) {
	args := m.Called(ctx, banner)
	return args.String(0), args.Error(1)
}

func (m *MockBannerService) Update(ctx context.Context, banner *model.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockBannerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBannerService) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockOrderService is a mock implementation of service.OrderService.
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

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) TrackByEmail(ctx context.Context, email string) ([]model.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) TrackByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Submit(ctx context.Context, ledger *cart.Ledger, sessionID string, req *service.CheckoutRequest) (*service.CheckoutResult, error) {
	args := m.Called(ctx, ledger, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

// MockCustomerService is a mock implementation of service.CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

// fakeSessionStore is an in-memory SessionStore for handler tests.
type fakeSessionStore struct {
	mu       sync.Mutex
	data     map[string]string
	prefills map[string]session.Prefill
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		data:     make(map[string]string),
		prefills: make(map[string]session.Prefill),
	}
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	if !ok {
		return "", cart.ErrSnapshotNotFound
	}
	return value, nil
}

func (f *fakeSessionStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeSessionStore) LoadPrefill(ctx context.Context, sessionID string) session.Prefill {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefills[sessionID]
}

func (f *fakeSessionStore) SavePrefill(ctx context.Context, sessionID string, p session.Prefill) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefills[sessionID] = p
}
