package catalog

import (
	"sort"
	"strings"

	"github.com/maison-aurelle/storefront/internal/domain"
)

// SortKey — порядок выдачи каталога.
type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortOldest      SortKey = "oldest"
	SortPriceHigh   SortKey = "priceHigh"
	SortPriceLow    SortKey = "priceLow"
	SortBestSelling SortKey = "bestSelling"
)

// Criteria — критерии выборки каталога. Пустое поле означает «все».
// Условия объединяются по И.
type Criteria struct {
	Query    string
	Category domain.Category
	Status   domain.Status
	SortKey  SortKey
}

// FilterAndSort возвращает новый отфильтрованный и отсортированный срез,
// не изменяя входной. Сортировка стабильная: равные элементы сохраняют
// исходный относительный порядок. Пагинация — забота вызывающей стороны.
func FilterAndSort(products []domain.Product, c Criteria) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, query, c) {
			result = append(result, p)
		}
	}

	sortProducts(result, c.SortKey)
	return result
}

func matches(p domain.Product, query string, c Criteria) bool {
	if query != "" &&
		!strings.Contains(strings.ToLower(p.Name), query) &&
		!strings.Contains(strings.ToLower(p.Description), query) {
		return false
	}

	if c.Category != "" && p.Category != c.Category {
		return false
	}

	if c.Status != "" && p.Status != c.Status {
		return false
	}

	return true
}

func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortBestSelling:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalesCount > products[j].SalesCount
		})
	default:
		// Неизвестный ключ сохраняет исходный порядок.
	}
}

// ValidSortKey сообщает, поддерживается ли ключ сортировки.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortNewest, SortOldest, SortPriceHigh, SortPriceLow, SortBestSelling:
		return true
	default:
		return false
	}
}
