package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderService OrderServicer
}

func NewOrdersHandler(orderService OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
	}
}

type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type PaymentResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

type OrderSummaryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	ClientID        int64               `json:"client_id"`
	EstablishmentID int64               `json:"establishment_id"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PointsGenerated int64               `json:"points_generated"`
	Items           []OrderItemResponse `json:"items"`
	Payments        []PaymentResponse   `json:"payments"`
	Establishment   *OrderSummaryRef    `json:"establishment,omitempty"`
	Client          *OrderSummaryRef    `json:"client,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func newOrderResponse(details *service.OrderDetails) OrderResponse {
	order := details.Order

	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	payments := make([]PaymentResponse, 0, len(details.Payments))
	for i := range details.Payments {
		payments = append(payments, newPaymentResponse(&details.Payments[i]))
	}

	resp := OrderResponse{
		ID:              order.ID,
		ClientID:        order.ClientID,
		EstablishmentID: order.EstablishmentID,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		PointsGenerated: order.PointsGenerated,
		Items:           items,
		Payments:        payments,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if details.Establishment != nil {
		resp.Establishment = &OrderSummaryRef{ID: details.Establishment.ID, Name: details.Establishment.Name}
	}
	if details.Client != nil {
		resp.Client = &OrderSummaryRef{ID: details.Client.ID, Name: details.Client.Name}
	}
	return resp
}

func newOrdersResponse(orders []service.OrderDetails) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, newOrderResponse(&orders[i]))
	}
	return resp
}

type OrderItemParams struct {
	ProductID int64 `binding:"required,gt=0" json:"product_id"`
	Quantity  int32 `binding:"required,gt=0" json:"quantity"`
}

type OrderCreateParams struct {
	EstablishmentID int64             `binding:"required,gt=0"       json:"establishment_id"`
	Items           []OrderItemParams `binding:"required,min=1,dive" json:"items"`
}

// Create POST RouteGroup + OrdersRoute. Заказ с позициями создается атомарно,
// снимок цен и сумма баллов фиксируются в момент создания.
func (h *OrdersHandler) Create(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	var params OrderCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	items := make([]service.OrderItemInput, 0, len(params.Items))
	for _, item := range params.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.orderService.Create(ctx, currentClientID, params.EstablishmentID, items)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": newOrderResponse(details)})
}

// MyOrders GET RouteGroup + OrdersRoute. Заказы текущего клиента, новые первыми.
func (h *OrdersHandler) MyOrders(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderService.GetByClientID(ctx, currentClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": newOrdersResponse(orders)})
}

// StoreOrders GET RouteGroup + StoreOrdersRoute. Заказы заведения текущего владельца.
func (h *OrdersHandler) StoreOrders(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderService.GetStoreOrders(ctx, currentClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": newOrdersResponse(orders)})
}

type OrderStatusParams struct {
	Status string `binding:"required,order_status" json:"status"`
}

// SetStatus PUT RouteGroup + OrderStatusRoute. Владелец двигает заказ по
// промежуточным статусам; completed выставляется только через Complete.
func (h *OrdersHandler) SetStatus(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	var params OrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.orderService.SetStatus(ctx, currentClientID, orderID, domain.OrderStatusType(params.Status))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(details)})
}

// Complete POST RouteGroup + OrderCompleteRoute. Завершает заказ и начисляет баллы;
// конкурентные вызовы начисляют их ровно один раз.
func (h *OrdersHandler) Complete(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.orderService.Complete(ctx, currentClientID, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(details)})
}

type PaymentCreateParams struct {
	Amount decimal.Decimal `binding:"required"                json:"amount"`
	Method string          `binding:"required,min=1,max=100"  json:"method"`
}

// CreatePayment POST RouteGroup + OrderPaymentsRoute. Платеж регистрируется без
// сверки с суммой заказа, повторные платежи по одному заказу допустимы.
func (h *OrdersHandler) CreatePayment(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	var params PaymentCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Amount.IsNegative() || params.Amount.IsZero() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "amount must be positive"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.orderService.CreatePayment(ctx, currentClientID, orderID, params.Amount, params.Method)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": newPaymentResponse(payment)})
}
