package domain

import "time"

// Category — фиксированный набор категорий витрины.
type Category string

const (
	CategoryWatches     Category = "Watches"
	CategoryJewelry     Category = "Jewelry"
	CategoryBags        Category = "Bags"
	CategoryFragrance   Category = "Fragrance"
	CategoryAccessories Category = "Accessories"
)

// Categories перечисляет все допустимые категории в порядке отображения.
var Categories = []Category{
	CategoryWatches,
	CategoryJewelry,
	CategoryBags,
	CategoryFragrance,
	CategoryAccessories,
}

// ValidCategory сообщает, входит ли значение в фиксированный набор.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status — состояние публикации товара.
type Status string

const (
	StatusPublished Status = "Published"
	StatusDraft     Status = "Draft"
)

func ValidStatus(s Status) bool {
	return s == StatusPublished || s == StatusDraft
}

// Product описывает товар витрины
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64 // Цена хранится в центах
	Stock       int64
	Category    Category
	Status      Status
	SalesCount  int64
	ImageKey    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsArchived  bool
}

func NewProduct(name, description string, price int64, stock int64, category Category, status Status) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		Status:      status,
	}
}
