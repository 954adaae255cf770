package pgrepo

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `id, created_at, updated_at, name, email, cpf, date_of_birth, password_hash, points_balance`

type ClientRepository struct {
	db uow.DBTX
}

func NewClientRepository(db uow.DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) CreateClient(
	ctx context.Context,
	args repoargs.CreateClient,
) (*domain.Client, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO clients (name, email, cpf, date_of_birth, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+clientColumns,
		args.Name, args.Email, args.CPF, args.DateOfBirth, args.PasswordHash)

	client, err := scanClient(row)
	if err != nil {
		return nil, convertErr(err, "creating client with email `%s`", args.Email)
	}
	return client, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	row := r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	client, err := scanClient(row)
	if err != nil {
		return nil, convertErr(err, "finding client by id `%d`", id)
	}
	return client, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	row := r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE email = $1`, email)
	client, err := scanClient(row)
	if err != nil {
		return nil, convertErr(err, "finding client by email `%s`", email)
	}
	return client, nil
}

// UpdateClient обновляет только переданные (не nil) поля профиля.
func (r *ClientRepository) UpdateClient(
	ctx context.Context,
	id int64,
	args repoargs.UpdateClient,
) (*domain.Client, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE clients
		SET name          = COALESCE($2, name),
		    email         = COALESCE($3, email),
		    date_of_birth = COALESCE($4, date_of_birth),
		    password_hash = COALESCE($5, password_hash),
		    updated_at    = now()
		WHERE id = $1
		RETURNING `+clientColumns,
		id, args.Name, args.Email, args.DateOfBirth, args.PasswordHash)

	client, err := scanClient(row)
	if err != nil {
		return nil, convertErr(err, "updating client with id `%d`", id)
	}
	return client, nil
}

// AddPointsBalance атомарно инкрементирует кешированный глобальный баланс клиента.
// Вызывается только внутри транзакции завершения заказа, вместе с записью в журнал баллов.
func (r *ClientRepository) AddPointsBalance(ctx context.Context, clientID int64, points int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE clients
		SET points_balance = points_balance + $2, updated_at = now()
		WHERE id = $1`,
		clientID, points)
	if err != nil {
		return convertErr(err, "adding %d points to client `%d`", points, clientID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "adding %d points to client `%d`", points, clientID)
	}
	return nil
}

func (r *ClientRepository) GetSummariesByIDs(
	ctx context.Context,
	ids []int64,
) (map[int64]repoargs.ClientSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM clients WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "getting client summaries")
	}
	defer rows.Close()

	summaries := make(map[int64]repoargs.ClientSummary, len(ids))
	for rows.Next() {
		var s repoargs.ClientSummary
		if scanErr := rows.Scan(&s.ID, &s.Name, &s.Email); scanErr != nil {
			return nil, convertErr(scanErr, "scanning client summary")
		}
		summaries[s.ID] = s
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting client summaries")
	}
	return summaries, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
		&c.Name, &c.Email, &c.CPF, &c.DateOfBirth,
		&c.PasswordHash, &c.PointsBalance,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
