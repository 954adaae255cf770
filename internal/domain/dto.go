package domain

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusConfirmed OrderStatusType = "confirmed"
	OrderStatusPreparing OrderStatusType = "preparing"
	OrderStatusReady     OrderStatusType = "ready"
	OrderStatusCompleted OrderStatusType = "completed"
	OrderStatusCancelled OrderStatusType = "cancelled"
)

// Terminal сообщает, является ли статус конечным. Из конечного статуса переходы запрещены.
func (s OrderStatusType) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// SettableOrderStatuses - статусы, которые владелец заведения может выставить напрямую.
// OrderStatusCompleted в списке отсутствует: завершение заказа идет только через
// OrderService.Complete, так как связано с начислением баллов.
var SettableOrderStatuses = []OrderStatusType{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCancelled,
}

type PointsTransactionType string

const (
	PointsTransactionGain PointsTransactionType = "gain"
	PointsTransactionLoss PointsTransactionType = "loss"
)

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "pending"
	PaymentStatusSettled PaymentStatusType = "settled"
	PaymentStatusFailed  PaymentStatusType = "failed"
)
