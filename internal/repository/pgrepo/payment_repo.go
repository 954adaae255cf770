package pgrepo

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, order_id, client_id, amount, method, status, transaction_id`

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(
	ctx context.Context,
	args repoargs.CreatePayment,
) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO payments (order_id, client_id, amount, method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		args.OrderID, args.ClientID, args.Amount, args.Method, args.Status, args.TransactionID)

	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for order `%d`", args.OrderID)
	}
	return payment, nil
}

// GetByOrderIDs возвращает платежи, сгруппированные по id заказа.
func (r *PaymentRepository) GetByOrderIDs(
	ctx context.Context,
	orderIDs []int64,
) (map[int64][]domain.Payment, error) {
	if len(orderIDs) == 0 {
		return map[int64][]domain.Payment{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = ANY($1) ORDER BY created_at`, orderIDs)
	if err != nil {
		return nil, convertErr(err, "getting payments by order ids")
	}
	defer rows.Close()

	payments := make(map[int64][]domain.Payment)
	for rows.Next() {
		payment, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment")
		}
		payments[payment.OrderID] = append(payments[payment.OrderID], *payment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting payments by order ids")
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.CreatedAt,
		&p.OrderID, &p.ClientID,
		&p.Amount, &p.Method, &p.Status, &p.TransactionID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
