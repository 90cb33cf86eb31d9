package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
)

func testCfg() *cfg.CatalogCfg {
	return &cfg.CatalogCfg{Provider: cfg.CatalogProviderMemory, Seed: 7, Size: 24}
}

func TestSeedIsDeterministic(t *testing.T) {
	ctx := context.Background()

	first, err := NewProductRepo(testCfg()).List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := NewProductRepo(testCfg()).List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("same seed produced %d and %d products", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Price != second[i].Price {
			t.Fatalf("same seed diverged at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}

	other, err := NewProductRepo(&cfg.CatalogCfg{Seed: 8, Size: 24}).List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	same := true
	for i := range first {
		if first[i].Name != other[i].Name {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical catalogs")
	}
}

func TestCRUDLifecycle(t *testing.T) {
	repo := NewProductRepo(testCfg())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.NewProduct("Opaline Weekender", "limited run", 120000, 2, domain.CategoryBags, domain.StatusPublished))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	got.Price = 99000
	updated, err := repo.Update(ctx, got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 99000 || updated.UpdatedAt == nil {
		t.Errorf("unexpected update result: %+v", updated)
	}

	if err := repo.IncrementSales(ctx, map[int64]int64{created.ID: 3}); err != nil {
		t.Fatalf("increment: %v", err)
	}
	got, err = repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SalesCount != 3 {
		t.Errorf("expected sales count 3, got %d", got.SalesCount)
	}

	if err := repo.Archive(ctx, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, e.ErrProductNotFound) {
		t.Errorf("archived product must be invisible, got %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range list {
		if p.ID == created.ID {
			t.Error("archived product leaked into the listing")
		}
	}
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewProductRepo(testCfg())

	if _, err := repo.GetByID(context.Background(), 10_000); !errors.Is(err, e.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
