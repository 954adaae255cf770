package pgrepo

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, client_id, establishment_id, status, total_amount, points_generated`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder вставляет заказ вместе с позициями. Метод рассчитан на вызов внутри
// uow-транзакции: одно из двух (заказ без позиций или позиции без заказа) не должно
// быть видно читателям ни в какой момент.
func (r *OrderRepository) CreateOrder(
	ctx context.Context,
	args repoargs.CreateOrder,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (client_id, establishment_id, status, total_amount, points_generated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		args.ClientID, args.EstablishmentID, domain.OrderStatusPending, args.TotalAmount, args.PointsGenerated)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for client `%d`", args.ClientID)
	}

	for _, item := range args.Items {
		if _, execErr := r.db.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice,
		); execErr != nil {
			return nil, convertErr(execErr, "creating order item for order `%d`", order.ID)
		}
	}

	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id `%d`", id)
	}
	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// FindClientOrder ищет заказ по id в пределах заказов клиента. Чужой заказ неотличим
// от несуществующего - domain.ErrRecordNotFound в обоих случаях.
func (r *OrderRepository) FindClientOrder(
	ctx context.Context,
	id int64,
	clientID int64,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND client_id = $2`, id, clientID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order `%d` of client `%d`", id, clientID)
	}
	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// FindEstablishmentOrder - то же, что FindClientOrder, но в пределах заказов заведения.
func (r *OrderRepository) FindEstablishmentOrder(
	ctx context.Context,
	id int64,
	establishmentID int64,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND establishment_id = $2`, id, establishmentID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order `%d` of establishment `%d`", id, establishmentID)
	}
	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// GetByClientID возвращает заказы клиента с позициями, отсортированные по дате
// создания по убыванию.
func (r *OrderRepository) GetByClientID(ctx context.Context, clientID int64) ([]domain.Order, error) {
	return r.getOrders(ctx, `client_id`, clientID)
}

func (r *OrderRepository) GetByEstablishmentID(
	ctx context.Context,
	establishmentID int64,
) ([]domain.Order, error) {
	return r.getOrders(ctx, `establishment_id`, establishmentID)
}

func (r *OrderRepository) getOrders(ctx context.Context, column string, id int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+column+` = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, convertErr(err, "getting orders by %s `%d`", column, id)
	}
	defer rows.Close()

	var orders []domain.Order
	var refs []*domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order by %s `%d`", column, id)
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting orders by %s `%d`", column, id)
	}

	for i := range orders {
		refs = append(refs, &orders[i])
	}
	if loadErr := r.loadItems(ctx, refs); loadErr != nil {
		return nil, loadErr
	}
	return orders, nil
}

// UpdateStatus выставляет статус условным обновлением: строка из конечного статуса
// (completed, cancelled) не трогается и вызов получает domain.ErrRecordNotFound.
// Условие в самом UPDATE, а не проверкой перед ним - гонка с конкурентным Complete
// не может откатить completed назад. Допустимость самого статуса проверяет
// сервисный слой.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status NOT IN ($3, $4)
		RETURNING `+orderColumns,
		id, status, domain.OrderStatusCompleted, domain.OrderStatusCancelled)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status of order `%d`", id)
	}
	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// CompleteIfReady - условный перевод заказа в completed: строка обновляется только
// если текущий статус ready. Из N конкурентных вызовов условие выполнится ровно у
// одного, остальные получат domain.ErrRecordNotFound. Этим закрывается гонка
// двойного начисления баллов.
func (r *OrderRepository) CompleteIfReady(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING `+orderColumns,
		id, domain.OrderStatusCompleted, domain.OrderStatusReady)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "completing order `%d`", id)
	}
	if loadErr := r.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// SumPointsGenerated - сырая сумма points_generated по всем заказам клиента в заведении,
// независимо от статуса заказа. См. repoargs.OrdersPointsSum.
func (r *OrderRepository) SumPointsGenerated(
	ctx context.Context,
	clientID int64,
	establishmentID int64,
) (*repoargs.OrdersPointsSum, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(points_generated), 0), COUNT(*)
		FROM orders
		WHERE client_id = $1 AND establishment_id = $2`,
		clientID, establishmentID)

	var sum repoargs.OrdersPointsSum
	if err := row.Scan(&sum.Points, &sum.OrdersCount); err != nil {
		return nil, convertErr(err, "summing generated points of client `%d`", clientID)
	}
	return &sum, nil
}

// loadItems догружает позиции (с именем товара) для переданных заказов одним запросом.
func (r *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Order, len(orders))
	ids := make([]int64, len(orders))
	for i, order := range orders {
		byID[order.ID] = order
		ids[i] = order.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price, oi.total_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`,
		ids)
	if err != nil {
		return convertErr(err, "loading order items")
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		scanErr := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		)
		if scanErr != nil {
			return convertErr(scanErr, "scanning order item")
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return convertErr(rowsErr, "loading order items")
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt,
		&o.ClientID, &o.EstablishmentID, &o.Status,
		&o.TotalAmount, &o.PointsGenerated,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
