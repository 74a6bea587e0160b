package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) Charge(ctx context.Context, amount kernel.Money, token string) (string, error) {
	args := m.Called(ctx, amount, token)
	return args.String(0), args.Error(1)
}

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	published []order.StatusChangedEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, events []order.StatusChangedEvent) {
	p.published = append(p.published, events...)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("Jordan Reeves", "5125551234", "123 Test St",
		"Austin", "TX", "78751", "jordan@example.com",
		time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return a
}

func testQuoteEngine(t *testing.T) services.QuoteEngine {
	t.Helper()
	tier, err := delivery.NewTier("Zone A", money(t, "5.00"), money(t, "25.00"), 5)
	require.NoError(t, err)
	zone, err := delivery.NewZone(tier, []string{"787"})
	require.NoError(t, err)
	table, err := delivery.NewTable("test", []delivery.Zone{zone})
	require.NoError(t, err)
	return services.NewQuoteEngine(table)
}

func testProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "", money(t, price),
		"Hybrid", "3.5g", "", time.Now().UTC())
	require.NoError(t, err)
	return p
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	c := cartWith(t, testProduct(t, "Purple Runtz THCA Flower", "34.99"), 1)
	o, err := order.NewOrder(kernel.NewUUID(), c, validAddress(t),
		delivery.NewAllowedQuote("78751", mustTier(t)), "uploads/id-123.png", time.Now().UTC())
	require.NoError(t, err)
	o.ClearEvents()
	return o
}

func cartWith(t *testing.T, p *product.Product, quantity int) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	line, err := cart.NewLine(p.ID(), p.Name(), quantity, p.Price(), nil)
	require.NoError(t, err)
	c.Add(line)
	return c
}

func mustTier(t *testing.T) delivery.Tier {
	t.Helper()
	tier, err := delivery.NewTier("Zone A", money(t, "5.00"), money(t, "25.00"), 5)
	require.NoError(t, err)
	return tier
}
