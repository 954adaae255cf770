package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrProductsUnavailable = errors.New("some products are not available")
	ErrUnsupportedStatus   = errors.New("unsupported order status")
)

// OrderStateError возвращается, когда текущий статус заказа запрещает запрошенную операцию
// (оплата отмененного заказа, завершение не готового заказа и т.п.).
type OrderStateError struct {
	OrderID int64
	Status  OrderStatusType
	Reason  string
}

func NewOrderStateError(orderID int64, status OrderStatusType, reason string) error {
	return &OrderStateError{OrderID: orderID, Status: status, Reason: reason}
}

func (e *OrderStateError) Error() string {
	return fmt.Sprintf("order %d in status %s: %s", e.OrderID, e.Status, e.Reason)
}
