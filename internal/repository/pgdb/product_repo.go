package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/repository/pgdb/converter"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/tr"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, name, description, price, stock, category, status,
	sales_count, image_key, created_at, updated_at, is_archived
`

// List возвращает все неархивированные товары. Фильтрация и сортировка
// делаются движком каталога в памяти, не в SQL.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE NOT is_archived
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetByID возвращает товар по идентификатору или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND NOT is_archived
	`

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Create добавляет товар и возвращает его с заполненными id и created_at.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		INSERT INTO products (name, description, price, stock, category, status, image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns + `;
	`

	err := scanProduct(p.pool.QueryRow(ctx, query,
		model.Name, model.Description, model.Price, model.Stock,
		model.Category, model.Status, model.ImageKey,
	), model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает редактируемые поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5,
			category = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
		RETURNING ` + productColumns + `;
	`

	err := scanProduct(p.pool.QueryRow(ctx, query,
		model.ID, model.Name, model.Description, model.Price, model.Stock,
		model.Category, model.Status,
	), model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Archive скрывает товар из каталога. Запись остаётся: на неё ссылаются
// снимки строк заказов.
func (p *ProductRepo) Archive(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
	`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// IncrementSales увеличивает счётчики продаж в рамках транзакции чекаута.
func (p *ProductRepo) IncrementSales(ctx context.Context, quantities map[int64]int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET sales_count = sales_count + $2
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for id, qty := range quantities {
		batch.Queue(query, id, qty)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func scanProduct(row pgx.Row, model *converter.ProductModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.Stock,
		&model.Category, &model.Status, &model.SalesCount, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
}
