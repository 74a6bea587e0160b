package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"

	"github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductResponse is the catalog entry representation.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	StrainType  string    `json:"strain_type"`
	Size        string    `json:"size"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductResponse(product queries.GetProductsQueryResponse) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		StrainType:  product.StrainType,
		Size:        product.Size,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

// CreateProductRequest is the payload for adding a catalog entry.
// The price is a decimal string so amounts never pass through floats.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	StrainType  string `json:"strain_type"`
	Size        string `json:"size"`
	ImageURL    string `json:"image_url"`
}

// CreateProductResponse returns the identifier of the created entry.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// QuoteRequest asks for a delivery quote before checkout.
type QuoteRequest struct {
	Zip      string `json:"zip"`
	Subtotal string `json:"subtotal"`
}

// QuoteResponse carries the full quote verdict. Disallowed quotes are still
// 200 responses; the verdict lives in allowed/reason.
type QuoteResponse struct {
	Allowed       bool   `json:"allowed"`
	Tier          string `json:"tier,omitempty"`
	Fee           string `json:"fee,omitempty"`
	MinOrder      string `json:"min_order,omitempty"`
	DistanceMiles int    `json:"distance_miles,omitempty"`
	Reason        string `json:"reason,omitempty"`
	TableVersion  string `json:"table_version"`
}

func toQuoteResponse(quote delivery.Quote, tableVersion string) QuoteResponse {
	response := QuoteResponse{
		Allowed:      quote.Allowed(),
		Reason:       quote.Reason(),
		TableVersion: tableVersion,
	}
	if quote.TierName() != "" {
		response.Tier = quote.TierName()
		response.Fee = quote.Fee().String()
		response.MinOrder = quote.MinOrder().String()
		response.DistanceMiles = quote.DistanceMiles()
	}
	return response
}

// VariantRequest selects a product variant within a checkout item.
type VariantRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// OrderItemRequest is one checkout selection.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Variant   *VariantRequest `json:"variant,omitempty"`
}

// AddressRequest carries the customer contact and delivery address.
type AddressRequest struct {
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Address1 string     `json:"address1"`
	City     string     `json:"city"`
	State    string     `json:"state"`
	Zip      string     `json:"zip"`
	Email    string     `json:"email,omitempty"`
	DOB      types.Date `json:"dob"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items      []OrderItemRequest `json:"items"`
	Address    AddressRequest     `json:"address"`
	IDImageRef string             `json:"id_image_ref"`
}

// CreateOrderResponse confirms order placement.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
	Status   string `json:"status"`
}

// ConfirmPaymentRequest submits an opaque payment token for a pending order.
type ConfirmPaymentRequest struct {
	PaymentToken string `json:"payment_token"`
}

// UpdateOrderStatusRequest is the dispatch console's transition request.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStatusResponse reports the order's lifecycle state after a transition.
type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderLineResponse is one snapshotted line in the order detail.
type OrderLineResponse struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	VariantName     string `json:"variant_name,omitempty"`
	VariantCategory string `json:"variant_category,omitempty"`
}

// OrderDetailResponse is the full order view for customers and staff.
type OrderDetailResponse struct {
	OrderID       string              `json:"order_id"`
	Status        string              `json:"status"`
	CustomerName  string              `json:"customer_name"`
	Zip           string              `json:"zip"`
	DeliveryTier  string              `json:"delivery_tier"`
	DeliveryFee   string              `json:"delivery_fee"`
	Subtotal      string              `json:"subtotal"`
	Total         string              `json:"total"`
	PaymentRef    string              `json:"payment_ref,omitempty"`
	IDDocumentRef string              `json:"id_document_ref"`
	CreatedAt     time.Time           `json:"created_at"`
	Lines         []OrderLineResponse `json:"lines"`
}

func toOrderDetailResponse(detail queries.GetOrderQueryResponse) OrderDetailResponse {
	lines := make([]OrderLineResponse, len(detail.Lines))
	for i, line := range detail.Lines {
		lines[i] = OrderLineResponse{
			ProductID:       line.ProductID.String(),
			ProductName:     line.ProductName,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice.String(),
			VariantName:     line.VariantName,
			VariantCategory: line.VariantCategory,
		}
	}

	return OrderDetailResponse{
		OrderID:       detail.ID.String(),
		Status:        detail.Status.String(),
		CustomerName:  detail.CustomerName,
		Zip:           detail.Zip,
		DeliveryTier:  detail.DeliveryTier,
		DeliveryFee:   detail.DeliveryFee.String(),
		Subtotal:      detail.Subtotal.String(),
		Total:         detail.Total.String(),
		PaymentRef:    detail.PaymentRef,
		IDDocumentRef: detail.IDDocumentRef,
		CreatedAt:     detail.CreatedAt,
		Lines:         lines,
	}
}

// OrderSummaryResponse is one dispatch console row.
type OrderSummaryResponse struct {
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	Zip          string    `json:"zip"`
	Total        string    `json:"total"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func toOrderSummaryResponse(row queries.GetOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:      row.ID.String(),
		Status:       row.Status.String(),
		CustomerName: row.CustomerName,
		Zip:          row.Zip,
		Total:        row.Total.String(),
		ItemCount:    row.ItemCount,
		CreatedAt:    row.CreatedAt,
	}
}
