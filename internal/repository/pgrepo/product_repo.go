package pgrepo

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, establishment_id, name, description, price, is_active`

type ProductRepository struct {
	db uow.DBTX
}

func NewProductRepository(db uow.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(
	ctx context.Context,
	args repoargs.CreateProduct,
) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (establishment_id, name, description, price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		args.EstablishmentID, args.Name, args.Description, args.Price, args.IsActive)

	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product `%s`", args.Name)
	}
	return product, nil
}

// Update обновляет товар в пределах заведения establishmentID. Чужой или несуществующий
// товар дает domain.ErrRecordNotFound.
func (r *ProductRepository) Update(
	ctx context.Context,
	id int64,
	establishmentID int64,
	args repoargs.UpdateProduct,
) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE products
		SET name        = COALESCE($3, name),
		    description = COALESCE($4, description),
		    price       = COALESCE($5, price),
		    is_active   = COALESCE($6, is_active),
		    updated_at  = now()
		WHERE id = $1 AND establishment_id = $2
		RETURNING `+productColumns,
		id, establishmentID, args.Name, args.Description, args.Price, args.IsActive)

	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating product with id `%d`", id)
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64, establishmentID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND establishment_id = $2`, id, establishmentID)
	if err != nil {
		return convertErr(err, "deleting product with id `%d`", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting product with id `%d`", id)
	}
	return nil
}

func (r *ProductRepository) GetByEstablishmentID(
	ctx context.Context,
	establishmentID int64,
	onlyActive bool,
) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE establishment_id = $1`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, convertErr(err, "getting products of establishment `%d`", establishmentID)
	}
	defer rows.Close()

	return collectProducts(rows, establishmentID)
}

// GetActiveByIDs возвращает активные товары заведения из списка ids. Результат может
// быть короче запрошенного списка: отсутствующие, чужие и неактивные товары просто
// не попадают в выборку, решение об ошибке принимает сервисный слой.
func (r *ProductRepository) GetActiveByIDs(
	ctx context.Context,
	establishmentID int64,
	ids []int64,
) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = ANY($1) AND establishment_id = $2 AND is_active`,
		ids, establishmentID)
	if err != nil {
		return nil, convertErr(err, "getting active products of establishment `%d`", establishmentID)
	}
	defer rows.Close()

	return collectProducts(rows, establishmentID)
}

func collectProducts(rows pgx.Rows, establishmentID int64) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning product of establishment `%d`", establishmentID)
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting products of establishment `%d`", establishmentID)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
		&p.EstablishmentID, &p.Name, &p.Description, &p.Price, &p.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
