package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify database persistence
// behavior including the line snapshot and optimistic concurrency.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

// createTestOrder builds a pending order with one flower line and one gummies
// line carrying a variant.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	basket := cart.NewCart()
	flower, err := cart.NewLine(kernel.NewUUID(), "Purple Runtz THCA Flower", 1, suite.money("34.99"), nil)
	suite.Require().NoError(err)
	basket.Add(flower)
	gummies, err := cart.NewLine(kernel.NewUUID(), "Delta-9 Gummies", 2, suite.money("19.99"),
		&cart.Variant{Name: "Watermelon", Category: "flavor"})
	suite.Require().NoError(err)
	basket.Add(gummies)

	address, err := order.NewAddress("Jordan Reeves", "5125551234", "123 Test St",
		"Austin", "TX", "78751", "jordan@example.com",
		time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	tier, err := delivery.NewTier("Zone A", suite.money("5.00"), suite.money("25.00"), 5)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), basket, address,
		delivery.NewAllowedQuote("78751", tier), "uploads/id-123.png", createdAt)
	suite.Require().NoError(err)
	testOrder.ClearEvents()
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsFullAggregate() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	testOrder := suite.createTestOrder(createdAt)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(1, loaded.Version())
	suite.Equal("74.97", loaded.Subtotal().String())
	suite.Equal("79.97", loaded.Total().String())
	suite.Equal("uploads/id-123.png", loaded.IDDocumentRef())
	suite.Nil(loaded.PaymentRef())

	suite.Equal("Jordan Reeves", loaded.Address().Name())
	suite.Equal("78751", loaded.Address().Zip())

	suite.True(loaded.Quote().Allowed())
	suite.Equal("Zone A", loaded.Quote().TierName())
	suite.Equal("5.00", loaded.Quote().Fee().String())

	suite.Require().Len(loaded.Lines(), 2)
	suite.Equal("Purple Runtz THCA Flower", loaded.Lines()[0].ProductName())
	suite.Require().NotNil(loaded.Lines()[1].Variant())
	suite.Equal("Watermelon", loaded.Lines()[1].Variant().Name)
	suite.Equal("flavor", loaded.Lines()[1].Variant().Category)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ConfirmPayment("ch_1a2b3c"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
	suite.Equal(2, loaded.Version())
	suite.Require().NotNil(loaded.PaymentRef())
	suite.Equal("ch_1a2b3c", *loaded.PaymentRef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two copies of the same order race to advance it.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Advance())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Advance())
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, orderrepo.ErrConcurrentUpdate)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(testOrder.Advance())

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, orderrepo.ErrConcurrentUpdate)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingCreatedBefore_FiltersByStatusAndAge() {
	ctx := context.Background()
	now := time.Now().UTC()

	stale := suite.createTestOrder(now.Add(-time.Hour))
	fresh := suite.createTestOrder(now)
	paid := suite.createTestOrder(now.Add(-2 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	suite.Require().NoError(paid.ConfirmPayment("ch_paid"))
	suite.Require().NoError(suite.repository.Update(ctx, paid))

	result, err := suite.repository.GetAllPendingCreatedBefore(ctx, now.Add(-30*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(stale))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
