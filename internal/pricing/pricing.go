// Package pricing — чистая арифметика корзины.
// Все функции не изменяют входные срезы и работают с ценами в центах.
package pricing

import (
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Options — конфигурационные константы расчета.
type Options struct {
	ShippingFeeCents int64
	TaxRate          decimal.Decimal
	IncludeTax       bool // Налог считается только в варианте чекаута
}

// Totals — разбивка стоимости корзины в центах.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// ComputeTotals пересчитывает разбивку с нуля по всем строкам.
// Доставка — плоская ставка, только при непустой корзине.
// Процент скидки ограничен таблицей купонов значением 100.
func ComputeTotals(lines []domain.CartLine, discountPercent int64, opts Options) Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Price * line.Quantity
	}

	sub := decimal.NewFromInt(subtotal)
	discount := sub.Mul(decimal.NewFromInt(discountPercent)).Div(hundred).Round(0).IntPart()

	var shipping int64
	if subtotal > 0 {
		shipping = opts.ShippingFeeCents
	}

	var tax int64
	if opts.IncludeTax {
		tax = sub.Mul(opts.TaxRate).Round(0).IntPart()
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal - discount + shipping + tax,
	}
}

// AddOrMergeLine добавляет строку в корзину. Если строка с тем же
// (productID, color, size) уже есть, её количество увеличивается на
// количество кандидата; иначе кандидат добавляется в конец.
func AddOrMergeLine(lines []domain.CartLine, candidate domain.CartLine) []domain.CartLine {
	result := make([]domain.CartLine, len(lines))
	copy(result, lines)

	for i := range result {
		if result[i].SameVariant(candidate) {
			result[i].Quantity += candidate.Quantity
			return result
		}
	}

	return append(result, candidate)
}

// UpdateQuantity заменяет количество строки по индексу.
// Количество меньше 1 или индекс вне диапазона — no-op: вход возвращается как есть.
func UpdateQuantity(lines []domain.CartLine, idx int, quantity int64) []domain.CartLine {
	if quantity < 1 || idx < 0 || idx >= len(lines) {
		return lines
	}

	result := make([]domain.CartLine, len(lines))
	copy(result, lines)
	result[idx].Quantity = quantity
	return result
}

// RemoveLine удаляет ровно одну строку по позиции, сохраняя порядок остальных.
// Индекс вне диапазона — no-op.
func RemoveLine(lines []domain.CartLine, idx int) []domain.CartLine {
	if idx < 0 || idx >= len(lines) {
		return lines
	}

	result := make([]domain.CartLine, 0, len(lines)-1)
	result = append(result, lines[:idx]...)
	result = append(result, lines[idx+1:]...)
	return result
}
