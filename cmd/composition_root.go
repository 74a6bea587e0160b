package cmd

import (
	"log/slog"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/notifier"
	"storefront/internal/adapters/out/payment"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

const paymentRequestTimeout = 10 * time.Second

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	quoteEngine   services.QuoteEngine
	paymentClient *payment.Client
	publisher     *notifier.LogPublisher
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, zoneTable delivery.Table, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		quoteEngine:   services.NewQuoteEngine(zoneTable),
		paymentClient: payment.NewClient(configs.PaymentServiceURL, paymentRequestTimeout),
		publisher:     notifier.NewLogPublisher(logger),
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.quoteEngine, c.publisher)
}

func (c *CompositionRoot) CreateConfirmOrderPaymentCommandHandler() commands.ConfirmOrderPaymentCommandHandler {
	return commands.NewConfirmOrderPaymentCommandHandler(c.orderUoWFactory(), c.paymentClient, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createProductHandler := c.CreateCreateProductCommandHandler()
	deleteProductHandler := c.CreateDeleteProductCommandHandler()
	createOrderHandler := c.CreateCreateOrderCommandHandler()
	confirmPaymentHandler := c.CreateConfirmOrderPaymentCommandHandler()
	advanceOrderHandler := c.CreateAdvanceOrderCommandHandler()
	cancelOrderHandler := c.CreateCancelOrderCommandHandler()

	return httpin.NewServer(
		c.quoteEngine,
		&createProductHandler,
		&deleteProductHandler,
		&createOrderHandler,
		&confirmPaymentHandler,
		&advanceOrderHandler,
		&cancelOrderHandler,
		c.CreateGetProductsQueryHandler(),
		c.CreateGetProductQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(paymentWindow time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpirePendingOrdersCommandHandler(), paymentWindow, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
