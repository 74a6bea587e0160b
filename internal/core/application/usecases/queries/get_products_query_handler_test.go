package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for query tests; read models never
// modify aggregates.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetProductsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProductsQueryHandler
	repo      *productrepo.GormProductRepository
}

func (suite *GetProductsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductsQueryHandler(db)
	suite.repo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *GetProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsQueryHandlerTestSuite) createProduct(name, price string, createdAt time.Time) *product.Product {
	amount, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, "Test description",
		amount, "Hybrid", "3.5g", "https://cdn.example.com/test.jpg", createdAt)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_WithProducts_ReturnsAllOrderedByCreation() {
	base := time.Now().UTC().Truncate(time.Second)
	oldest := suite.createProduct("Delta-9 Gummies", "19.99", base.Add(-2*time.Hour))
	middle := suite.createProduct("Purple Runtz THCA Flower", "34.99", base.Add(-time.Hour))
	newest := suite.createProduct("Gelato 41", "39.99", base)

	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.True(result[0].ID.IsEqual(oldest.ID()))
	suite.Equal("Delta-9 Gummies", result[0].Name)
	suite.Equal("19.99", result[0].Price.String())

	suite.True(result[1].ID.IsEqual(middle.ID()))
	suite.Equal("Purple Runtz THCA Flower", result[1].Name)
	suite.Equal("Hybrid", result[1].StrainType)
	suite.Equal("3.5g", result[1].Size)
	suite.Equal("https://cdn.example.com/test.jpg", result[1].ImageURL)

	suite.True(result[2].ID.IsEqual(newest.ID()))
	suite.Equal("Gelato 41", result[2].Name)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductsQuery constructor")
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.createProduct("Purple Runtz THCA Flower", "34.99", time.Now().UTC())

	query := queries.NewGetProductsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsQueryHandlerTestSuite))
}
