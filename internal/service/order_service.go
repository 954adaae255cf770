package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/shopspring/decimal"
)

// pointsPerCurrencyUnits - политика начисления: 1 балл за каждые 10 денежных единиц
// суммы заказа. Константа платформы, от заведения не зависит.
var pointsPerCurrencyUnits = decimal.NewFromInt(10)

type OrderService struct {
	uow               uow.UOW
	orderRepo         OrderRepository
	establishmentRepo EstablishmentRepository
	productRepo       ProductRepository
	paymentRepo       PaymentRepository
	clientRepo        ClientRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	establishmentRepo, estRepoErr :=
		uow.GetRepositoryAs[EstablishmentRepository](u, uow.RepositoryName(repoargs.EstablishmentRepoName))
	if estRepoErr != nil {
		return nil, estRepoErr
	}
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	paymentRepo, paymentRepoErr :=
		uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr
	}
	clientRepo, clientRepoErr :=
		uow.GetRepositoryAs[ClientRepository](u, uow.RepositoryName(repoargs.ClientRepoName))
	if clientRepoErr != nil {
		return nil, clientRepoErr
	}
	return &OrderService{
		uow:               u,
		orderRepo:         orderRepo,
		establishmentRepo: establishmentRepo,
		productRepo:       productRepo,
		paymentRepo:       paymentRepo,
		clientRepo:        clientRepo,
	}, nil
}

// OrderDetails - заказ, обогащенный данными для чтения: платежи и сводка контрагента.
// Обогащение - удобство читателя, на инварианты записи не влияет.
type OrderDetails struct {
	Order         domain.Order
	Payments      []domain.Payment
	Establishment *repoargs.EstablishmentSummary
	Client        *repoargs.ClientSummary
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int32
}

// Create строит и сохраняет заказ из корзины клиента.
//
// Алгоритм работы:
//  1. Заведение должно существовать, иначе domain.ErrRecordNotFound.
//  2. Все товары корзины должны быть активными товарами этого заведения. Если выборка
//     короче списка различных id корзины (неизвестный, чужой, неактивный или
//     задублированный товар) - domain.ErrProductsUnavailable.
//  3. Суммы считаются в decimal: total_amount = sum(цена * количество),
//     points_generated = floor(total_amount / 10). Обе величины фиксируются при
//     создании и далее не пересчитываются.
//  4. Заказ и позиции пишутся одной uow-транзакцией: частично созданный заказ не
//     наблюдаем ни при каком исходе.
func (o *OrderService) Create(
	ctx context.Context,
	clientID int64,
	establishmentID int64,
	items []OrderItemInput,
) (*OrderDetails, error) {
	establishment, estErr := o.establishmentRepo.FindByID(ctx, establishmentID)
	if estErr != nil {
		return nil, fmt.Errorf("creating order: %w", estErr)
	}

	productIDs := make([]int64, 0, len(items))
	for _, item := range items {
		if !slices.Contains(productIDs, item.ProductID) {
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, productsErr := o.productRepo.GetActiveByIDs(ctx, establishmentID, productIDs)
	if productsErr != nil {
		return nil, fmt.Errorf("creating order: %w", productsErr)
	}
	if len(products) != len(productIDs) || len(productIDs) != len(items) {
		return nil, fmt.Errorf("creating order: %w", domain.ErrProductsUnavailable)
	}

	productsByID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	totalAmount := decimal.Zero
	orderItems := make([]repoargs.CreateOrderItem, len(items))
	for i, item := range items {
		product := productsByID[item.ProductID]
		lineTotal := product.Price.Mul(decimal.NewFromInt32(item.Quantity))
		totalAmount = totalAmount.Add(lineTotal)
		orderItems[i] = repoargs.CreateOrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
		}
	}
	pointsGenerated := totalAmount.Div(pointsPerCurrencyUnits).Floor().IntPart()

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		var createErr error
		order, createErr = orderRepo.CreateOrder(c, repoargs.CreateOrder{
			ClientID:        clientID,
			EstablishmentID: establishmentID,
			TotalAmount:     totalAmount,
			PointsGenerated: pointsGenerated,
			Items:           orderItems,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating order: %w", txErr)
	}

	return &OrderDetails{
		Order:         *order,
		Establishment: &repoargs.EstablishmentSummary{ID: establishment.ID, Name: establishment.Name},
	}, nil
}

// GetByClientID возвращает заказы клиента (по дате создания по убыванию) с платежами
// и сводкой заведения.
func (o *OrderService) GetByClientID(ctx context.Context, clientID int64) ([]OrderDetails, error) {
	orders, ordersErr := o.orderRepo.GetByClientID(ctx, clientID)
	if ordersErr != nil {
		return nil, ordersErr //nolint:wrapcheck
	}
	return o.enrichOrders(ctx, orders, true, false)
}

// GetStoreOrders возвращает заказы заведения вызывающего владельца с платежами и
// сводкой клиента. Если клиент не владеет заведением - domain.ErrRecordNotFound.
func (o *OrderService) GetStoreOrders(ctx context.Context, ownerClientID int64) ([]OrderDetails, error) {
	establishment, estErr := o.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	orders, ordersErr := o.orderRepo.GetByEstablishmentID(ctx, establishment.ID)
	if ordersErr != nil {
		return nil, ordersErr //nolint:wrapcheck
	}
	return o.enrichOrders(ctx, orders, false, true)
}

// SetStatus выставляет статус заказа от имени владельца заведения.
//
// Правила:
//   - вызывающий должен владеть заведением, а заказ - принадлежать этому заведению;
//     оба промаха неразличимы и дают domain.ErrRecordNotFound (владение намеренно
//     неотличимо от отсутствия);
//   - status должен входить в domain.SettableOrderStatuses, иначе
//     domain.ErrUnsupportedStatus (completed выставляется только через Complete);
//   - из конечного статуса переходов нет - *domain.OrderStateError. Проверка
//     продублирована условием в самом UPDATE, так что конкурентный Complete
//     не может быть перезаписан устаревшим SetStatus.
func (o *OrderService) SetStatus(
	ctx context.Context,
	ownerClientID int64,
	orderID int64,
	status domain.OrderStatusType,
) (*OrderDetails, error) {
	if !slices.Contains(domain.SettableOrderStatuses, status) {
		return nil, fmt.Errorf("setting order status: %w", domain.ErrUnsupportedStatus)
	}

	establishment, estErr := o.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	order, orderErr := o.orderRepo.FindEstablishmentOrder(ctx, orderID, establishment.ID)
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}
	if order.Status.Terminal() {
		return nil, domain.NewOrderStateError(order.ID, order.Status, "status is terminal")
	}

	updated, updateErr := o.orderRepo.UpdateStatus(ctx, orderID, status)
	if updateErr != nil {
		// Условное обновление не нашло строку: заказ существует (проверено выше),
		// значит между чтением и UPDATE он успел перейти в конечный статус.
		if isRecordNotFound(updateErr) {
			return nil, domain.NewOrderStateError(order.ID, order.Status, "status is terminal")
		}
		return nil, fmt.Errorf("setting order status: %w", updateErr)
	}

	details, enrichErr := o.enrichOrders(ctx, []domain.Order{*updated}, false, true)
	if enrichErr != nil {
		return nil, enrichErr
	}
	return &details[0], nil
}

// Complete завершает заказ и начисляет баллы. Ключевая гарантия ядра: смена статуса,
// инкремент кешированного баланса клиента и запись в журнал баллов коммитятся одной
// транзакцией - читатель никогда не увидит completed без записи журнала и наоборот.
//
// Статус меняется условным обновлением (... WHERE status = 'ready'), поэтому из N
// конкурентных вызовов ровно один начислит баллы, остальные получат
// *domain.OrderStateError. Повторное завершение отсекается так же: статус уже не ready.
func (o *OrderService) Complete(ctx context.Context, ownerClientID int64, orderID int64) (*OrderDetails, error) {
	establishment, estErr := o.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	order, orderErr := o.orderRepo.FindEstablishmentOrder(ctx, orderID, establishment.ID)
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}

	var completed *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		var completeErr error
		completed, completeErr = orderRepo.CompleteIfReady(c, orderID)
		if completeErr != nil {
			return completeErr //nolint:wrapcheck
		}

		clientRepo, clientRepoErr := uow.GetAs[ClientRepository](tx, uow.RepositoryName(repoargs.ClientRepoName))
		if clientRepoErr != nil {
			return clientRepoErr //nolint:wrapcheck
		}
		if balanceErr := clientRepo.AddPointsBalance(c, completed.ClientID, completed.PointsGenerated); balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}

		pointsRepo, pointsRepoErr :=
			uow.GetAs[PointsTransactionRepository](tx, uow.RepositoryName(repoargs.PointsTransactionRepoName))
		if pointsRepoErr != nil {
			return pointsRepoErr //nolint:wrapcheck
		}
		_, pointsErr := pointsRepo.Create(c, repoargs.CreatePointsTransaction{
			ClientID:    completed.ClientID,
			OrderID:     completed.ID,
			Points:      completed.PointsGenerated,
			Type:        domain.PointsTransactionGain,
			Description: fmt.Sprintf("Points earned from order #%d", completed.ID),
		})
		return pointsErr //nolint:wrapcheck
	})

	if txErr != nil {
		// Условное обновление не нашло строку: заказ существует (проверено выше),
		// значит дело в статусе.
		if isRecordNotFound(txErr) {
			return nil, domain.NewOrderStateError(order.ID, order.Status, "order must be ready to be completed")
		}
		return nil, fmt.Errorf("completing order: %w", txErr)
	}

	details, enrichErr := o.enrichOrders(ctx, []domain.Order{*completed}, false, true)
	if enrichErr != nil {
		return nil, enrichErr
	}
	return &details[0], nil
}

// CreatePayment регистрирует попытку оплаты заказа.
//
// Заказ должен принадлежать вызывающему клиенту (иначе domain.ErrRecordNotFound),
// отмененный заказ оплатить нельзя (*domain.OrderStateError). Любой другой статус
// оплату не ограничивает, сверка суммы платежа с суммой заказа не выполняется.
func (o *OrderService) CreatePayment(
	ctx context.Context,
	clientID int64,
	orderID int64,
	amount decimal.Decimal,
	method string,
) (*domain.Payment, error) {
	order, orderErr := o.orderRepo.FindClientOrder(ctx, orderID, clientID)
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, domain.NewOrderStateError(order.ID, order.Status, "cannot create payment for cancelled order")
	}

	payment, createErr := o.paymentRepo.Create(ctx, repoargs.CreatePayment{
		OrderID:       orderID,
		ClientID:      clientID,
		Amount:        amount,
		Method:        method,
		Status:        domain.PaymentStatusPending,
		TransactionID: newTransactionID(),
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating payment: %w", createErr)
	}
	return payment, nil
}

// enrichOrders догружает платежи и сводки контрагентов для читательских срезов.
func (o *OrderService) enrichOrders(
	ctx context.Context,
	orders []domain.Order,
	withEstablishments bool,
	withClients bool,
) ([]OrderDetails, error) {
	details := make([]OrderDetails, len(orders))
	if len(orders) == 0 {
		return details, nil
	}

	orderIDs := make([]int64, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
		details[i] = OrderDetails{Order: order}
	}

	payments, paymentsErr := o.paymentRepo.GetByOrderIDs(ctx, orderIDs)
	if paymentsErr != nil {
		return nil, paymentsErr //nolint:wrapcheck
	}
	for i := range details {
		details[i].Payments = payments[details[i].Order.ID]
	}

	if withEstablishments {
		establishmentIDs := uniqueIDs(orders, func(o domain.Order) int64 { return o.EstablishmentID })
		summaries, summariesErr := o.establishmentRepo.GetSummariesByIDs(ctx, establishmentIDs)
		if summariesErr != nil {
			return nil, summariesErr //nolint:wrapcheck
		}
		for i := range details {
			if summary, ok := summaries[details[i].Order.EstablishmentID]; ok {
				details[i].Establishment = &summary
			}
		}
	}

	if withClients {
		clientIDs := uniqueIDs(orders, func(o domain.Order) int64 { return o.ClientID })
		summaries, summariesErr := o.clientRepo.GetSummariesByIDs(ctx, clientIDs)
		if summariesErr != nil {
			return nil, summariesErr //nolint:wrapcheck
		}
		for i := range details {
			if summary, ok := summaries[details[i].Order.ClientID]; ok {
				details[i].Client = &summary
			}
		}
	}

	return details, nil
}

func uniqueIDs(orders []domain.Order, key func(domain.Order) int64) []int64 {
	var ids []int64
	for _, order := range orders {
		if id := key(order); !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}
