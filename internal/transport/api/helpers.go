package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

func getClientIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentClientIDKey)
}

// parseIDParam извлекает числовой path-параметр. Нечисловое значение указывает на
// несуществующую сущность и дает 404, как и любой другой промах по id.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// abortWithServiceError переводит ошибки сервисного слоя в http-статусы:
//   - ErrRecordNotFound - 404 (в том числе промахи по владению);
//   - ErrDuplicateKey - 409;
//   - ErrProductsUnavailable, ErrUnsupportedStatus - 422;
//   - *OrderStateError - 400 с публичным сообщением;
//   - все прочее - 500 с приватной ошибкой.
func abortWithServiceError(c *gin.Context, err error) {
	var stateErr *domain.OrderStateError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, errors.New("record already exists")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrProductsUnavailable):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrProductsUnavailable).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrUnsupportedStatus):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrUnsupportedStatus).
			SetType(gin.ErrorTypePublic)
	case errors.As(err, &stateErr):
		_ = c.AbortWithError(http.StatusBadRequest, errors.New(stateErr.Reason)).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
	}
}
