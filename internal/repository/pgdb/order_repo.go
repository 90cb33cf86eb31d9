package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/repository/pgdb/converter"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create пишет заказ в рамках транзакции чекаута: заказ и outbox-событие
// коммитятся атомарно.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := o.conv.ToModel(order)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (id, user_id, lines, subtotal, discount, shipping, tax, total, coupon_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID, model.UserID, model.Lines,
		model.Subtotal, model.Discount, model.Shipping, model.Tax, model.Total,
		model.CouponCode,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model)
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (o *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, lines, subtotal, discount, shipping, tax, total, coupon_code, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.collect(rows)
}

// ListRecent возвращает последние заказы всех покупателей для дашборда.
func (o *OrderRepo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, lines, subtotal, discount, shipping, tax, total, coupon_code, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := o.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.collect(rows)
}

func (o *OrderRepo) collect(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	result := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.UserID, &model.Lines,
			&model.Subtotal, &model.Discount, &model.Shipping, &model.Tax, &model.Total,
			&model.CouponCode, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		order, err := o.conv.ToEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
