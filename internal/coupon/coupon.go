// Package coupon проверяет статические промокоды витрины.
// Проверка имитирует сетевой вызов: настраиваемая задержка перед ответом.
package coupon

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/maison-aurelle/storefront/pkg/e"
)

// DefaultTable — таблица код -> процент скидки. Коды без срока действия,
// активен максимум один; новый код полностью заменяет предыдущий.
var DefaultTable = map[string]int64{
	"LUXURY10":  10,
	"LUXURY20":  20,
	"VIP30":     30,
	"WELCOME15": 15,
	"GOLD20":    20,
}

// Service ищет код в таблице после блум-префильтра.
type Service struct {
	codes  map[string]int64
	filter *bloom.BloomFilter
	delay  time.Duration

	mu   sync.Mutex
	gens map[string]uint64
}

// NewService строит сервис по таблице кодов. Ключи таблицы должны быть
// в верхнем регистре; поиск нечувствителен к регистру.
func NewService(table map[string]int64, delay time.Duration) *Service {
	const falsePositiveRate = 0.001

	filter := bloom.NewWithEstimates(uint(len(table))+1, falsePositiveRate)
	codes := make(map[string]int64, len(table))
	for code, percent := range table {
		upper := strings.ToUpper(code)
		codes[upper] = percent
		filter.AddString(upper)
	}

	return &Service{
		codes:  codes,
		filter: filter,
		delay:  delay,
		gens:   make(map[string]uint64),
	}
}

// Resolve возвращает процент скидки для кода или e.ErrInvalidCoupon.
// Перед ответом выдерживается задержка, уважающая отмену контекста.
func (s *Service) Resolve(ctx context.Context, code string) (int64, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" || !s.filter.TestString(normalized) {
		return 0, e.ErrInvalidCoupon
	}

	percent, ok := s.codes[normalized]
	if !ok {
		// Ложное срабатывание префильтра
		return 0, e.ErrInvalidCoupon
	}

	return percent, nil
}

// Begin регистрирует новую попытку применения кода для ключа (пользователя)
// и возвращает её поколение. Побеждает последняя начатая попытка.
func (s *Service) Begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[key]++
	return s.gens[key]
}

// Current сообщает, остаётся ли попытка с данным поколением последней.
// Результат устаревшей попытки отбрасывается вызывающей стороной.
func (s *Service) Current(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[key] == gen
}
