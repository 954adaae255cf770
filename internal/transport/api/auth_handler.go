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
)

type AuthHandler struct {
	clientService ClientServicer
}

func NewAuthHandler(clientService ClientServicer) *AuthHandler {
	return &AuthHandler{
		clientService: clientService,
	}
}

type ClientRegisterParams struct {
	Name        string `binding:"required,min=1,max=255"  json:"name"`
	Email       string `binding:"required,email,max=255"  json:"email"`
	CPF         string `binding:"required,min=11,max=14"  json:"cpf"`
	DateOfBirth string `binding:"required,datetime=2006-01-02" json:"date_of_birth"`
	Password    string `binding:"required,min=6,max=255"  json:"password"`
}

type ClientResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CPF           string    `json:"cpf"`
	DateOfBirth   string    `json:"date_of_birth"`
	PointsBalance int64     `json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:            client.ID,
		Name:          client.Name,
		Email:         client.Email,
		CPF:           client.CPF,
		DateOfBirth:   client.DateOfBirth.Format(time.DateOnly),
		PointsBalance: client.PointsBalance,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// Register POST RouteGroup + RegisterRoute. Регистрирует клиента и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params ClientRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	// формат проверен тегом datetime
	dateOfBirth, _ := time.Parse(time.DateOnly, params.DateOfBirth)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	client, jwtToken, createErr := h.clientService.Register(ctx, service.RegisterClientArgs{
		Name:        params.Name,
		Email:       params.Email,
		CPF:         params.CPF,
		DateOfBirth: dateOfBirth,
		Password:    params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("client with this email or cpf already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, gin.H{"client": newClientResponse(client)})
}

type ClientLoginParams struct {
	Email    string `binding:"required,email"          json:"email"`
	Password string `binding:"required,min=6,max=255"  json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params ClientLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	client, token, err := h.clientService.Login(ctx, service.LoginClientArgs{
		Email:    params.Email,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"client": newClientResponse(client)})
}
