package api

import (
	"fmt"
	"slices"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// validateOrderStatus проверяет, что значение поля - статус, который владелец может
// выставить напрямую (см. domain.SettableOrderStatuses).
func validateOrderStatus(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return slices.Contains(domain.SettableOrderStatuses, domain.OrderStatusType(str))
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("order_status", validateOrderStatus); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
