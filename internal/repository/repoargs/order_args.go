package repoargs

import "github.com/shopspring/decimal"

type CreateOrder struct {
	ClientID        int64
	EstablishmentID int64
	TotalAmount     decimal.Decimal
	PointsGenerated int64
	Items           []CreateOrderItem
}

// CreateOrderItem - позиция заказа. UnitPrice фиксируется на момент создания заказа
// и не зависит от последующих изменений цены товара.
type CreateOrderItem struct {
	ProductID  int64
	Quantity   int32
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// OrdersPointsSum - сырая сумма points_generated по заказам клиента в заведении
// независимо от статуса заказа. Операционный срез, не бухгалтерский.
type OrdersPointsSum struct {
	Points      int64
	OrdersCount int64
}
