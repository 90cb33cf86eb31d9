package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/repository/redis/converter"
	"github.com/maison-aurelle/storefront/pkg/clients"
	"github.com/maison-aurelle/storefront/pkg/e"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит сессии под ключами session:<token> с TTL из конфига.
type SessionRepo struct {
	client *clients.RedisClient
	conv   converter.SessionConverter
	cfg    *cfg.RedisCfg
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter, cfg *cfg.RedisCfg) *SessionRepo {
	return &SessionRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

func (s *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(s.conv.ToModel(session))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.sessionKey(session.Token), data, s.cfg.SessionTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Get возвращает сессию по токену или e.ErrSessionNotFound.
// Истёкший TTL неотличим от отсутствия ключа.
func (s *SessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SessionRepo) Delete(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
