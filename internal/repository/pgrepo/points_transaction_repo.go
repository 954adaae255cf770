package pgrepo

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
)

const pointsTransactionColumns = `id, created_at, client_id, order_id, points, type, description`

type PointsTransactionRepository struct {
	db uow.DBTX
}

func NewPointsTransactionRepository(db uow.DBTX) *PointsTransactionRepository {
	return &PointsTransactionRepository{db: db}
}

// Create добавляет запись в журнал баллов. Журнал append-only: update и delete
// для таблицы points_transactions не существуют ни в одном репозитории.
func (r *PointsTransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreatePointsTransaction,
) (*domain.PointsTransaction, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO points_transactions (client_id, order_id, points, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+pointsTransactionColumns,
		args.ClientID, args.OrderID, args.Points, args.Type, args.Description)

	var t domain.PointsTransaction
	err := row.Scan(
		&t.ID, &t.CreatedAt,
		&t.ClientID, &t.OrderID,
		&t.Points, &t.Type, &t.Description,
	)
	if err != nil {
		return nil, convertErr(err, "creating points transaction for client `%d`", args.ClientID)
	}
	return &t, nil
}

// LedgerForEstablishment агрегирует журнал клиента по заказам конкретного заведения.
// Начисления и списания возвращаются раздельно, свертку делает сервисный слой.
func (r *PointsTransactionRepository) LedgerForEstablishment(
	ctx context.Context,
	clientID int64,
	establishmentID int64,
) (*repoargs.LedgerAggregation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(pt.points) FILTER (WHERE pt.type = $3), 0),
			COALESCE(SUM(pt.points) FILTER (WHERE pt.type = $4), 0)
		FROM points_transactions pt
		JOIN orders o ON o.id = pt.order_id
		WHERE pt.client_id = $1 AND o.establishment_id = $2`,
		clientID, establishmentID, domain.PointsTransactionGain, domain.PointsTransactionLoss)

	var agg repoargs.LedgerAggregation
	if err := row.Scan(&agg.GainPoints, &agg.LossPoints); err != nil {
		return nil, convertErr(err, "aggregating points ledger of client `%d`", clientID)
	}
	return &agg, nil
}
