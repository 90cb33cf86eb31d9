// Package memory реализует репозиторий товаров в памяти: детерминированный
// витринный каталог для демо и локальной разработки без PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
)

var (
	adjectives = []string{"Heritage", "Imperial", "Midnight", "Atelier", "Riviera", "Sovereign", "Velvet", "Opaline"}
	nouns      = map[domain.Category][]string{
		domain.CategoryWatches:     {"Chronograph", "Tourbillon", "Regatta"},
		domain.CategoryJewelry:     {"Pendant", "Bracelet", "Solitaire"},
		domain.CategoryBags:        {"Tote", "Clutch", "Weekender"},
		domain.CategoryFragrance:   {"Eau de Parfum", "Elixir", "Cologne"},
		domain.CategoryAccessories: {"Scarf", "Cufflinks", "Belt"},
	}
)

// ProductRepo хранит каталог в памяти. Один и тот же сид даёт один и тот же
// каталог при каждом запуске.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewProductRepo(cfg *cfg.CatalogCfg) *ProductRepo {
	repo := &ProductRepo{
		products: make(map[int64]domain.Product, cfg.Size),
		nextID:   1,
	}
	repo.seed(cfg.Seed, cfg.Size)

	return repo
}

// seed наполняет каталог псевдослучайными товарами с фиксированным сидом.
func (p *ProductRepo) seed(seed int64, size int) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < size; i++ {
		category := domain.Categories[rng.IntN(len(domain.Categories))]
		names := nouns[category]
		name := fmt.Sprintf("%s %s No. %d", adjectives[rng.IntN(len(adjectives))], names[rng.IntN(len(names))], i+1)

		status := domain.StatusPublished
		if rng.IntN(10) == 0 {
			status = domain.StatusDraft
		}

		product := domain.Product{
			ID:          p.nextID,
			Name:        name,
			Description: fmt.Sprintf("Handcrafted %s piece from the maison archives.", category),
			Price:       int64(rng.IntN(490000)+10000) / 100 * 100, // 100.00 .. 4999.00
			Stock:       int64(rng.IntN(20) + 1),
			Category:    category,
			Status:      status,
			SalesCount:  int64(rng.IntN(500)),
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}

		p.products[product.ID] = product
		p.nextID++
	}
}

func (p *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]domain.Product, 0, len(p.products))
	for _, product := range p.products {
		if product.IsArchived {
			continue
		}
		result = append(result, product)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (p *ProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	product, ok := p.products[id]
	if !ok || product.IsArchived {
		return nil, e.ErrProductNotFound
	}

	return &product, nil
}

func (p *ProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	product.ID = p.nextID
	product.CreatedAt = time.Now().UTC()
	p.nextID++

	p.products[product.ID] = *product
	return product, nil
}

func (p *ProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, ok := p.products[product.ID]
	if !ok || current.IsArchived {
		return nil, e.ErrProductNotFound
	}

	now := time.Now().UTC()
	product.CreatedAt = current.CreatedAt
	product.SalesCount = current.SalesCount
	product.UpdatedAt = &now

	p.products[product.ID] = *product
	return product, nil
}

func (p *ProductRepo) Archive(_ context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	product, ok := p.products[id]
	if !ok || product.IsArchived {
		return e.ErrProductNotFound
	}

	now := time.Now().UTC()
	product.IsArchived = true
	product.UpdatedAt = &now

	p.products[id] = product
	return nil
}

func (p *ProductRepo) IncrementSales(_ context.Context, quantities map[int64]int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, qty := range quantities {
		product, ok := p.products[id]
		if !ok {
			continue
		}
		product.SalesCount += qty
		p.products[id] = product
	}

	return nil
}
