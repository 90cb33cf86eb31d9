package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/pkg/clients"
	"github.com/maison-aurelle/storefront/pkg/e"
)

// FavoritesRepo хранит избранное пользователя как Redis-множество:
// дубли исключаются самим типом данных.
type FavoritesRepo struct {
	client *clients.RedisClient
}

func NewFavoritesRepo(client *clients.RedisClient) *FavoritesRepo {
	return &FavoritesRepo{client: client}
}

// Toggle добавляет товар в избранное либо убирает его, если он там уже есть.
// Возвращает true, если после вызова товар в избранном.
func (f *FavoritesRepo) Toggle(ctx context.Context, userID string, productID int64) (bool, error) {
	key := f.favoritesKey(userID)
	member := strconv.FormatInt(productID, 10)

	added, err := f.client.Client.SAdd(ctx, key, member).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if added == 1 {
		return true, nil
	}

	// Уже был в множестве — переключение означает удаление.
	if err := f.client.Client.SRem(ctx, key, member).Err(); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return false, nil
}

// List возвращает идентификаторы избранных товаров в возрастающем порядке.
// SMEMBERS не упорядочен, сортировка делает выдачу стабильной.
func (f *FavoritesRepo) List(ctx context.Context, userID string) ([]int64, error) {
	members, err := f.client.Client.SMembers(ctx, f.favoritesKey(userID)).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *FavoritesRepo) favoritesKey(userID string) string {
	return fmt.Sprintf("favorites:%s", userID)
}
