package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type EstablishmentsHandler struct {
	establishmentService EstablishmentServicer
}

func NewEstablishmentsHandler(establishmentService EstablishmentServicer) *EstablishmentsHandler {
	return &EstablishmentsHandler{
		establishmentService: establishmentService,
	}
}

type EstablishmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newEstablishmentResponse(e *domain.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Address:     e.Address,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newEstablishmentDetailsResponse(details *service.EstablishmentDetails) gin.H {
	products := make([]ProductResponse, 0, len(details.Products))
	for i := range details.Products {
		products = append(products, newProductResponse(&details.Products[i]))
	}
	return gin.H{
		"establishment": newEstablishmentResponse(&details.Establishment),
		"products":      products,
	}
}

// List GET RouteGroup + EstablishmentsRoute. Публичный список заведений,
// опциональные query-параметры category и search.
func (h *EstablishmentsHandler) List(c *gin.Context) {
	filter := repoargs.EstablishmentFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	establishments, err := h.establishmentService.List(ctx, filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := make([]EstablishmentResponse, 0, len(establishments))
	for i := range establishments {
		resp = append(resp, newEstablishmentResponse(&establishments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"establishments": resp})
}

// Show GET RouteGroup + EstablishmentRoute. Публичная карточка заведения,
// в списке товаров только активные.
func (h *EstablishmentsHandler) Show(c *gin.Context) {
	establishmentID, ok := parseIDParam(c, "establishmentID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.establishmentService.GetWithProducts(ctx, establishmentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEstablishmentDetailsResponse(details))
}

type EstablishmentCreateParams struct {
	Name        string `binding:"required,min=1,max=255" json:"name"`
	Description string `binding:"max=1000"               json:"description"`
	Category    string `binding:"required,min=1,max=100" json:"category"`
	Address     string `binding:"required,min=1,max=500" json:"address"`
}

// Create POST RouteGroup + EstablishmentsRoute. Владельцем становится текущий клиент,
// второе заведение на клиента дает 409.
func (h *EstablishmentsHandler) Create(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	var params EstablishmentCreateParams
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

	establishment, err := h.establishmentService.Create(ctx, currentClientID, service.CreateEstablishmentArgs{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Address:     params.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("client already owns an establishment")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"establishment": newEstablishmentResponse(establishment)})
}

// MyStore GET RouteGroup + MyStoreRoute. Заведение текущего клиента со всеми
// товарами, включая неактивные.
func (h *EstablishmentsHandler) MyStore(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.establishmentService.MyStore(ctx, currentClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEstablishmentDetailsResponse(details))
}

type EstablishmentUpdateParams struct {
	Name        *string `binding:"omitempty,min=1,max=255" json:"name"`
	Description *string `binding:"omitempty,max=1000"      json:"description"`
	Category    *string `binding:"omitempty,min=1,max=100" json:"category"`
	Address     *string `binding:"omitempty,min=1,max=500" json:"address"`
}

// UpdateMyStore PUT RouteGroup + MyStoreRoute.
func (h *EstablishmentsHandler) UpdateMyStore(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	var params EstablishmentUpdateParams
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

	details, err := h.establishmentService.UpdateMyStore(ctx, currentClientID, repoargs.UpdateEstablishment{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Address:     params.Address,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEstablishmentDetailsResponse(details))
}

type ProductCreateParams struct {
	Name        string          `binding:"required,min=1,max=255" json:"name"`
	Description string          `binding:"max=1000"               json:"description"`
	Price       decimal.Decimal `binding:"required"               json:"price"`
	IsActive    *bool           `json:"is_active"`
}

// CreateProduct POST RouteGroup + MyStoreProductsRoute. Товар без явного is_active
// создается активным.
func (h *EstablishmentsHandler) CreateProduct(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	var params ProductCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Price.IsNegative() || params.Price.IsZero() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "price must be positive"})
		return
	}

	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.establishmentService.CreateProduct(ctx, currentClientID, service.CreateProductArgs{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		IsActive:    isActive,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": newProductResponse(product)})
}

type ProductUpdateParams struct {
	Name        *string          `binding:"omitempty,min=1,max=255" json:"name"`
	Description *string          `binding:"omitempty,max=1000"      json:"description"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    *bool            `json:"is_active"`
}

// UpdateProduct PUT RouteGroup + MyStoreProductRoute.
func (h *EstablishmentsHandler) UpdateProduct(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	var params ProductUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Price != nil && (params.Price.IsNegative() || params.Price.IsZero()) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "price must be positive"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.establishmentService.UpdateProduct(ctx, currentClientID, productID, repoargs.UpdateProduct{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		IsActive:    params.IsActive,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": newProductResponse(product)})
}

// DeleteProduct DELETE RouteGroup + MyStoreProductRoute.
func (h *EstablishmentsHandler) DeleteProduct(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.establishmentService.DeleteProduct(ctx, currentClientID, productID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
