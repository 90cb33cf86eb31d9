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
	r "github.com/redis/go-redis/v9"
)

// ProfileRepo хранит профиль целиком под ключом profile:<user_id>.
// Сохранение перетирает ключ без слияния: побеждает последняя запись.
type ProfileRepo struct {
	client *clients.RedisClient
	conv   converter.ProfileConverter
}

func NewProfileRepo(client *clients.RedisClient, conv converter.ProfileConverter) *ProfileRepo {
	return &ProfileRepo{
		client: client,
		conv:   conv,
	}
}

// Get возвращает профиль пользователя. Отсутствующий ключ даёт пустой
// профиль: страница редактирования стартует с незаполненной формы.
func (p *ProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	data, err := p.client.Client.Get(ctx, p.profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return &domain.Profile{UserID: userID}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProfileRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Save перезаписывает профиль целиком. TTL нет: профиль живёт до
// следующего сохранения.
func (p *ProfileRepo) Save(ctx context.Context, profile *domain.Profile) error {
	data, err := json.Marshal(p.conv.ToModel(profile))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.client.Client.Set(ctx, p.profileKey(profile.UserID), data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProfileRepo) profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}
