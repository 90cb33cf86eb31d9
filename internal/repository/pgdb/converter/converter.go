package converter

import (
	"encoding/json"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) (*OrderModel, error)
	ToEntity(model *OrderModel) (*domain.Order, error)
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func NewProductConverter() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Stock:       entity.Stock,
		Category:    string(entity.Category),
		Status:      string(entity.Status),
		SalesCount:  entity.SalesCount,
		ImageKey:    entity.ImageKey,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		IsArchived:  entity.IsArchived,
	}
}

func (ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
		Category:    domain.Category(model.Category),
		Status:      domain.Status(model.Status),
		SalesCount:  model.SalesCount,
		ImageKey:    model.ImageKey,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		IsArchived:  model.IsArchived,
	}
}

type OrderConverterImpl struct{}

func NewOrderConverter() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func (OrderConverterImpl) ToModel(entity *domain.Order) (*OrderModel, error) {
	lines, err := json.Marshal(entity.Lines)
	if err != nil {
		return nil, err
	}

	return &OrderModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		Lines:      lines,
		Subtotal:   entity.Subtotal,
		Discount:   entity.Discount,
		Shipping:   entity.Shipping,
		Tax:        entity.Tax,
		Total:      entity.Total,
		CouponCode: entity.CouponCode,
		CreatedAt:  entity.CreatedAt,
	}, nil
}

func (OrderConverterImpl) ToEntity(model *OrderModel) (*domain.Order, error) {
	var lines []domain.CartLine
	if len(model.Lines) > 0 {
		if err := json.Unmarshal(model.Lines, &lines); err != nil {
			return nil, err
		}
	}

	return &domain.Order{
		ID:         model.ID,
		UserID:     model.UserID,
		Lines:      lines,
		Subtotal:   model.Subtotal,
		Discount:   model.Discount,
		Shipping:   model.Shipping,
		Tax:        model.Tax,
		Total:      model.Total,
		CouponCode: model.CouponCode,
		CreatedAt:  model.CreatedAt,
	}, nil
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverter() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   entity.EventType,
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   model.EventType,
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}

	return entities
}
