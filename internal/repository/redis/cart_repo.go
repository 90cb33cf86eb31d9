package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/repository/redis/converter"
	"github.com/maison-aurelle/storefront/pkg/clients"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзину целиком под одним ключом cart:<user_id>.
// Запись перетирает ключ без слияния: побеждает последняя.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		logger: logger,
	}
}

// Get возвращает корзину пользователя. Отсутствующий или нечитаемый ключ
// даёт пустую корзину: витрина стартует с чистого состояния, не падает.
func (c *CartRepo) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return &domain.Cart{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.decode(userID, data), nil
}

// decode разбирает сохранённый JSON; битая полезная нагрузка отбрасывается
// с предупреждением и заменяется пустой корзиной.
func (c *CartRepo) decode(userID string, data []byte) *domain.Cart {
	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("corrupt cart payload dropped. user: %s, error: %v", userID, e.Wrap(whereami.WhereAmI(), err))
		return &domain.Cart{}
	}

	return c.conv.ToEntity(&model)
}

// Save перезаписывает корзину целиком. TTL нет: корзина живёт до чекаута
// или явной очистки.
func (c *CartRepo) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	data, err := json.Marshal(c.conv.ToModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(userID), data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete очищает корзину после чекаута.
func (c *CartRepo) Delete(ctx context.Context, userID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(userID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
