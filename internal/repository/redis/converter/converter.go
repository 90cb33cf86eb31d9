package converter

import (
	"github.com/maison-aurelle/storefront/internal/domain"
)

// CartConverter преобразует корзину между domain и Redis-моделью.
type CartConverter interface {
	ToModel(entity *domain.Cart) *CartRedisModel
	ToEntity(model *CartRedisModel) *domain.Cart
}

// ProfileConverter преобразует профиль между domain и Redis-моделью.
type ProfileConverter interface {
	ToModel(entity *domain.Profile) *ProfileRedisModel
	ToEntity(model *ProfileRedisModel) *domain.Profile
}

// SessionConverter преобразует сессию между domain и Redis-моделью.
type SessionConverter interface {
	ToModel(entity *domain.Session) *SessionRedisModel
	ToEntity(model *SessionRedisModel) *domain.Session
}

type CartConverterImpl struct{}

func NewCartConverter() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (CartConverterImpl) ToModel(entity *domain.Cart) *CartRedisModel {
	lines := make([]CartLineRedisModel, 0, len(entity.Lines))
	for _, line := range entity.Lines {
		lines = append(lines, CartLineRedisModel{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			ImageKey:  line.ImageKey,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return &CartRedisModel{
		Lines:           lines,
		CouponCode:      entity.CouponCode,
		DiscountPercent: entity.DiscountPercent,
	}
}

func (CartConverterImpl) ToEntity(model *CartRedisModel) *domain.Cart {
	lines := make([]domain.CartLine, 0, len(model.Lines))
	for _, line := range model.Lines {
		lines = append(lines, domain.CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			ImageKey:  line.ImageKey,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return &domain.Cart{
		Lines:           lines,
		CouponCode:      model.CouponCode,
		DiscountPercent: model.DiscountPercent,
	}
}

type ProfileConverterImpl struct{}

func NewProfileConverter() *ProfileConverterImpl {
	return &ProfileConverterImpl{}
}

func (ProfileConverterImpl) ToModel(entity *domain.Profile) *ProfileRedisModel {
	return &ProfileRedisModel{
		UserID:    entity.UserID,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		Email:     entity.Email,
		Phone:     entity.Phone,
		Bio:       entity.Bio,
		Address:   entity.Address,
		City:      entity.City,
		State:     entity.State,
		ZipCode:   entity.ZipCode,
		Country:   entity.Country,
	}
}

func (ProfileConverterImpl) ToEntity(model *ProfileRedisModel) *domain.Profile {
	return &domain.Profile{
		UserID:    model.UserID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
		Bio:       model.Bio,
		Address:   model.Address,
		City:      model.City,
		State:     model.State,
		ZipCode:   model.ZipCode,
		Country:   model.Country,
	}
}

type SessionConverterImpl struct{}

func NewSessionConverter() *SessionConverterImpl {
	return &SessionConverterImpl{}
}

func (SessionConverterImpl) ToModel(entity *domain.Session) *SessionRedisModel {
	return &SessionRedisModel{
		Token:     entity.Token,
		UserID:    entity.UserID,
		Role:      string(entity.Role),
		CreatedAt: entity.CreatedAt,
	}
}

func (SessionConverterImpl) ToEntity(model *SessionRedisModel) *domain.Session {
	return &domain.Session{
		Token:     model.Token,
		UserID:    model.UserID,
		Role:      domain.Role(model.Role),
		CreatedAt: model.CreatedAt,
	}
}
