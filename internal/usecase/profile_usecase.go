package usecase

import (
	"context"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// ProfileUseCase читает и сохраняет профиль покупателя. Поля формы не
// валидируются глубже заполненности: проверка остаётся на стороне формы.
type ProfileUseCase struct {
	profileRepo ProfileRepository
	logger      logger.Logger
}

func NewProfileUC(profileRepo ProfileRepository, logger logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя; незаполненный профиль пустой.
func (p *ProfileUseCase) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	const op = "ProfileUseCase.Get"

	profile, err := p.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return profile, nil
}

// Update сохраняет профиль целиком: частичных правок нет, форма всегда
// шлёт полный набор полей.
func (p *ProfileUseCase) Update(ctx context.Context, req *UpdateProfileReq) (*domain.Profile, error) {
	const op = "ProfileUseCase.Update"

	profile := &domain.Profile{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Bio:       req.Bio,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
	}

	if err := p.profileRepo.Save(ctx, profile); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("profile saved. user: %s", req.UserID)
	return profile, nil
}
