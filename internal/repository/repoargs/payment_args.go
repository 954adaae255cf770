package repoargs

import (
	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/shopspring/decimal"
)

type CreatePayment struct {
	OrderID       int64
	ClientID      int64
	Amount        decimal.Decimal
	Method        string
	Status        domain.PaymentStatusType
	TransactionID string
}
