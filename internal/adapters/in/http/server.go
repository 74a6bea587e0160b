// Package http provides the inbound HTTP adapter: echo handlers that map
// requests onto commands and queries and render their results.
package http

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Command handler contracts consumed by the server. Declared here so tests
// can substitute mocks without a database.
type (
	CreateProductCommandHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}
	DeleteProductCommandHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}
	CreateOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ConfirmOrderPaymentCommandHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderPaymentCommand) error
	}
	AdvanceOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) error
	}
	CancelOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
)

// Query handler contracts consumed by the server.
type (
	GetProductsQueryHandler interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.GetProductsQueryResponse, error)
	}
	GetProductQueryHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.GetProductsQueryResponse, error)
	}
	GetOrdersQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}
	GetOrderQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	quoteEngine services.QuoteEngine

	// Command handlers
	createProductHandler  CreateProductCommandHandler
	deleteProductHandler  DeleteProductCommandHandler
	createOrderHandler    CreateOrderCommandHandler
	confirmPaymentHandler ConfirmOrderPaymentCommandHandler
	advanceOrderHandler   AdvanceOrderCommandHandler
	cancelOrderHandler    CancelOrderCommandHandler

	// Query handlers
	getProductsHandler GetProductsQueryHandler
	getProductHandler  GetProductQueryHandler
	getOrdersHandler   GetOrdersQueryHandler
	getOrderHandler    GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	quoteEngine services.QuoteEngine,
	createProductHandler CreateProductCommandHandler,
	deleteProductHandler DeleteProductCommandHandler,
	createOrderHandler CreateOrderCommandHandler,
	confirmPaymentHandler ConfirmOrderPaymentCommandHandler,
	advanceOrderHandler AdvanceOrderCommandHandler,
	cancelOrderHandler CancelOrderCommandHandler,
	getProductsHandler GetProductsQueryHandler,
	getProductHandler GetProductQueryHandler,
	getOrdersHandler GetOrdersQueryHandler,
	getOrderHandler GetOrderQueryHandler,
) *Server {
	return &Server{
		quoteEngine:           quoteEngine,
		createProductHandler:  createProductHandler,
		deleteProductHandler:  deleteProductHandler,
		createOrderHandler:    createOrderHandler,
		confirmPaymentHandler: confirmPaymentHandler,
		advanceOrderHandler:   advanceOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getProductsHandler:    getProductsHandler,
		getProductHandler:     getProductHandler,
		getOrdersHandler:      getOrdersHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// RegisterRoutes binds all storefront and console endpoints on the echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.POST("/delivery/quote", s.QuoteDelivery)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/payment", s.ConfirmOrderPayment)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/admin/orders", s.GetOrders)
	api.PATCH("/admin/orders/:id/status", s.UpdateOrderStatus)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = toProductResponse(product)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id - retrieves one catalog entry.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderBadRequest(ctx, "Invalid product ID: "+err.Error())
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	product, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProduct handles POST /api/v1/products - adds a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return s.renderBadRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return s.renderError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, request.Name,
		request.Description, price, request.StrainType, request.Size, request.ImageURL)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ID: productID.String()})
}

// DeleteProduct handles DELETE /api/v1/products/:id - removes a catalog
// entry. Existing orders keep their line snapshots.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderBadRequest(ctx, "Invalid product ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteDelivery handles POST /api/v1/delivery/quote - quotes a delivery
// before checkout. The verdict is always a 200; disallowed ZIPs carry a
// reason instead of an error.
func (s *Server) QuoteDelivery(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return s.renderBadRequest(ctx, "Invalid request body")
	}

	subtotal, err := kernel.NewMoneyFromString(request.Subtotal)
	if err != nil {
		return s.renderError(ctx, err)
	}

	quote := s.quoteEngine.Quote(request.Zip, subtotal)

	return ctx.JSON(http.StatusOK, toQuoteResponse(quote, s.quoteEngine.TableVersion()))
}

// CreateOrder handles POST /api/v1/orders - places a new order from the
// submitted cart, address, and ID-document reference.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.renderBadRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(request.Items))
	for _, itemReq := range request.Items {
		productID, err := kernel.UUIDFromString(itemReq.ProductID)
		if err != nil {
			return s.renderBadRequest(ctx, "Invalid product ID: "+err.Error())
		}

		var variant *cart.Variant
		if itemReq.Variant != nil {
			variant = &cart.Variant{Name: itemReq.Variant.Name, Category: itemReq.Variant.Category}
		}

		item, err := commands.NewOrderItem(productID, itemReq.Quantity, variant)
		if err != nil {
			return s.renderError(ctx, err)
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(request.Address.Name, request.Address.Phone,
		request.Address.Address1, request.Address.City, request.Address.State,
		request.Address.Zip, request.Address.Email, request.Address.DOB.Time)
	if err != nil {
		return s.renderError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items, address, request.IDImageRef)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}
	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:  orderID.String(),
		Subtotal: detail.Subtotal.String(),
		Total:    detail.Total.String(),
		Status:   detail.Status.String(),
	})
}

// ConfirmOrderPayment handles POST /api/v1/orders/:id/payment - captures
// payment for a pending order. A declined charge is a 402 and the order stays
// pending.
func (s *Server) ConfirmOrderPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderBadRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request ConfirmPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return s.renderBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderPaymentCommand(orderID, request.PaymentToken)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: orderID.String(),
		Status:  order.Confirmed.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - order detail for customer
// polling and the staff detail view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderBadRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// GetOrders handles GET /api/v1/admin/orders - the dispatch console listing,
// optionally filtered by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	statusFilter := order.Unknown
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		parsed, err := order.StatusFromString(statusParam)
		if err != nil {
			return s.renderError(ctx, err)
		}
		statusFilter = parsed
	}

	query, err := queries.NewGetOrdersQuery(statusFilter)
	if err != nil {
		return s.renderError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummaryResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status - the
// dispatch console's transition request. Cancellation routes through the
// cancel use case; everything else goes through the single-step advance.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderBadRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return s.renderBadRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if target == order.Cancelled {
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID)
		if cmdErr != nil {
			return s.renderError(ctx, cmdErr)
		}
		if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return s.renderError(ctx, handleErr)
		}
	} else {
		cmd, cmdErr := commands.NewAdvanceOrderCommand(orderID, target)
		if cmdErr != nil {
			return s.renderError(ctx, cmdErr)
		}
		if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return s.renderError(ctx, handleErr)
		}
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: orderID.String(),
		Status:  target.String(),
	})
}

// renderError maps domain errors onto HTTP status codes.
func (s *Server) renderError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrPaymentDeclined):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, orderrepo.ErrConcurrentUpdate):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func (s *Server) renderBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
