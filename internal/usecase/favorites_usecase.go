package usecase

import (
	"context"

	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// FavoritesUseCase — избранное пользователя: множество идентификаторов
// товаров без дублей. Независимо от корзины; удаление товара из каталога
// не зачищает избранное.
type FavoritesUseCase struct {
	favoritesRepo FavoritesRepository
	logger        logger.Logger
}

func NewFavoritesUC(favoritesRepo FavoritesRepository, logger logger.Logger) *FavoritesUseCase {
	return &FavoritesUseCase{
		favoritesRepo: favoritesRepo,
		logger:        logger,
	}
}

// Toggle добавляет товар в избранное или убирает его.
// Возвращает true, если товар оказался в избранном после вызова.
func (f *FavoritesUseCase) Toggle(ctx context.Context, userID string, productID int64) (bool, error) {
	const op = "FavoritesUseCase.Toggle"

	added, err := f.favoritesRepo.Toggle(ctx, userID, productID)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return added, nil
}

// List возвращает идентификаторы избранных товаров.
func (f *FavoritesUseCase) List(ctx context.Context, userID string) ([]int64, error) {
	const op = "FavoritesUseCase.List"

	ids, err := f.favoritesRepo.List(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ids, nil
}
