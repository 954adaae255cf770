package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const establishmentColumns = `id, created_at, updated_at, owner_client_id, name, description, category, address`

type EstablishmentRepository struct {
	db uow.DBTX
}

func NewEstablishmentRepository(db uow.DBTX) *EstablishmentRepository {
	return &EstablishmentRepository{db: db}
}

// Create создает заведение. Колонка owner_client_id уникальна: второе заведение
// одного владельца завершится ошибкой domain.ErrDuplicateKey.
func (r *EstablishmentRepository) Create(
	ctx context.Context,
	args repoargs.CreateEstablishment,
) (*domain.Establishment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO establishments (owner_client_id, name, description, category, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+establishmentColumns,
		args.OwnerClientID, args.Name, args.Description, args.Category, args.Address)

	establishment, err := scanEstablishment(row)
	if err != nil {
		return nil, convertErr(err, "creating establishment for client `%d`", args.OwnerClientID)
	}
	return establishment, nil
}

func (r *EstablishmentRepository) FindByID(ctx context.Context, id int64) (*domain.Establishment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+establishmentColumns+` FROM establishments WHERE id = $1`, id)
	establishment, err := scanEstablishment(row)
	if err != nil {
		return nil, convertErr(err, "finding establishment by id `%d`", id)
	}
	return establishment, nil
}

// FindByOwnerClientID возвращает заведение, которым владеет клиент. Отсутствие записи
// означает, что клиент не владелец - domain.ErrRecordNotFound.
func (r *EstablishmentRepository) FindByOwnerClientID(
	ctx context.Context,
	ownerClientID int64,
) (*domain.Establishment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+establishmentColumns+` FROM establishments WHERE owner_client_id = $1`, ownerClientID)
	establishment, err := scanEstablishment(row)
	if err != nil {
		return nil, convertErr(err, "finding establishment by owner `%d`", ownerClientID)
	}
	return establishment, nil
}

func (r *EstablishmentRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateEstablishment,
) (*domain.Establishment, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE establishments
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    category    = COALESCE($4, category),
		    address     = COALESCE($5, address),
		    updated_at  = now()
		WHERE id = $1
		RETURNING `+establishmentColumns,
		id, args.Name, args.Description, args.Category, args.Address)

	establishment, err := scanEstablishment(row)
	if err != nil {
		return nil, convertErr(err, "updating establishment with id `%d`", id)
	}
	return establishment, nil
}

// List возвращает заведения по фильтру, отсортированные по дате создания по убыванию.
func (r *EstablishmentRepository) List(
	ctx context.Context,
	filter repoargs.EstablishmentFilter,
) ([]domain.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE true`
	var queryArgs []any

	if filter.Category != "" {
		queryArgs = append(queryArgs, filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(queryArgs))
	}
	if filter.Search != "" {
		queryArgs = append(queryArgs, filter.Search)
		query += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, len(queryArgs))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing establishments")
	}
	defer rows.Close()

	var establishments []domain.Establishment
	for rows.Next() {
		establishment, scanErr := scanEstablishment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning establishment")
		}
		establishments = append(establishments, *establishment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing establishments")
	}
	return establishments, nil
}

func (r *EstablishmentRepository) GetSummariesByIDs(
	ctx context.Context,
	ids []int64,
) (map[int64]repoargs.EstablishmentSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM establishments WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "getting establishment summaries")
	}
	defer rows.Close()

	summaries := make(map[int64]repoargs.EstablishmentSummary, len(ids))
	for rows.Next() {
		var s repoargs.EstablishmentSummary
		if scanErr := rows.Scan(&s.ID, &s.Name); scanErr != nil {
			return nil, convertErr(scanErr, "scanning establishment summary")
		}
		summaries[s.ID] = s
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting establishment summaries")
	}
	return summaries, nil
}

func scanEstablishment(row pgx.Row) (*domain.Establishment, error) {
	var e domain.Establishment
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt,
		&e.OwnerClientID, &e.Name, &e.Description, &e.Category, &e.Address,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
