package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Client struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Email         string
	CPF           string
	DateOfBirth   time.Time
	PasswordHash  string
	PointsBalance int64
}

type Establishment struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OwnerClientID int64
	Name          string
	Description   string
	Category      string
	Address       string
}

type Product struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	EstablishmentID int64
	Name            string
	Description     string
	Price           decimal.Decimal
	IsActive        bool
}

type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ClientID        int64
	EstablishmentID int64
	Status          OrderStatusType
	TotalAmount     decimal.Decimal
	PointsGenerated int64
	Items           []OrderItem
}

type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

type Payment struct {
	ID            int64
	CreatedAt     time.Time
	OrderID       int64
	ClientID      int64
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatusType
	TransactionID string
}

// PointsTransaction - запись журнала баллов. После создания никогда не изменяется
// и не удаляется, бухгалтерский баланс клиента выводится именно из этих записей.
type PointsTransaction struct {
	ID          int64
	CreatedAt   time.Time
	ClientID    int64
	OrderID     int64
	Points      int64
	Type        PointsTransactionType
	Description string
}
