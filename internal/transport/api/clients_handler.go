package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/fidelize/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ClientsHandler struct {
	clientService ClientServicer
	pointsService PointsServicer
}

func NewClientsHandler(clientService ClientServicer, pointsService PointsServicer) *ClientsHandler {
	return &ClientsHandler{
		clientService: clientService,
		pointsService: pointsService,
	}
}

// Me GET RouteGroup + MeRoute.
func (h *ClientsHandler) Me(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	client, err := h.clientService.GetByID(ctx, currentClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": newClientResponse(client)})
}

type ClientUpdateParams struct {
	Name        *string `binding:"omitempty,min=1,max=255"       json:"name"`
	Email       *string `binding:"omitempty,email,max=255"       json:"email"`
	DateOfBirth *string `binding:"omitempty,datetime=2006-01-02" json:"date_of_birth"`
	Password    *string `binding:"omitempty,min=6,max=255"       json:"password"`
}

// UpdateMe PUT RouteGroup + MeRoute. Частичное обновление профиля.
func (h *ClientsHandler) UpdateMe(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	var params ClientUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	args := service.UpdateClientArgs{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	}
	if params.DateOfBirth != nil {
		// формат проверен тегом datetime
		dateOfBirth, _ := time.Parse(time.DateOnly, *params.DateOfBirth)
		args.DateOfBirth = &dateOfBirth
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	client, err := h.clientService.Update(ctx, currentClientID, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": newClientResponse(client)})
}

// AllPoints GET RouteGroup + AllPointsRoute. Кешированный глобальный баланс клиента.
func (h *ClientsHandler) AllPoints(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	points, err := h.pointsService.AllUserPoints(ctx, currentClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id": currentClientID,
		"points":    points,
	})
}

// EstablishmentPoints GET RouteGroup + EstablishmentPointsRoute.
// Баланс клиента в заведении по журналу баллов (только завершенные заказы).
func (h *ClientsHandler) EstablishmentPoints(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	establishmentID, ok := parseIDParam(c, "establishmentID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	points, err := h.pointsService.EstablishmentPoints(ctx, currentClientID, establishmentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":        currentClientID,
		"establishment_id": establishmentID,
		"points":           points,
	})
}

// PointsFromOrders GET RouteGroup + PointsFromOrdersRoute.
// Сырая сумма points_generated по всем заказам клиента в заведении, включая
// незавершенные. Срез отличается от EstablishmentPoints и не сверяется с ним.
func (h *ClientsHandler) PointsFromOrders(c *gin.Context) {
	currentClientID := getClientIDFromContext(c)
	establishmentID, ok := parseIDParam(c, "establishmentID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sum, err := h.pointsService.PointsFromOrders(ctx, currentClientID, establishmentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":        currentClientID,
		"establishment_id": establishmentID,
		"points":           sum.Points,
		"orders_count":     sum.OrdersCount,
	})
}
