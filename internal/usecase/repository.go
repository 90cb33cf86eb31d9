package usecase

import (
	"context"

	"github.com/maison-aurelle/storefront/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Archive(ctx context.Context, id int64) error
	// IncrementSales увеличивает счетчики продаж; вызывается в транзакции чекаута.
	IncrementSales(ctx context.Context, quantities map[int64]int64) error
}

type CartRepository interface {
	// Get возвращает пустую корзину, если ключа нет или данные не читаются.
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	// Save перезаписывает корзину целиком; последняя запись побеждает.
	Save(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

type FavoritesRepository interface {
	Toggle(ctx context.Context, userID string, productID int64) (bool, error)
	List(ctx context.Context, userID string) ([]int64, error)
}

type ProfileRepository interface {
	// Get возвращает пустой профиль, если пользователь его ещё не заполнял.
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	// Save перезаписывает профиль целиком; последняя запись побеждает.
	Save(ctx context.Context, profile *domain.Profile) error
}

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type OrderRepository interface {
	// Create пишет заказ внутри активной транзакции из контекста.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// ListRecent возвращает последние заказы всех покупателей для дашборда.
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

type OutboxRepository interface {
	// Create пишет событие внутри активной транзакции из контекста.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
