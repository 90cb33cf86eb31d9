package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
)

// Транзакционная часть PlaceOrder требует живого пула pgx и покрывается
// интеграционно; здесь проверяются предтранзакционные инварианты.

func TestCheckoutPreview(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts["u1"] = &domain.Cart{
		Lines: []domain.CartLine{
			*domain.NewCartLine(1, "Chronograph Royale", 5000, "", domain.DefaultColor, domain.DefaultSize, 2),
		},
		CouponCode:      "LUXURY10",
		DiscountPercent: 10,
	}

	uc := NewCheckoutUC(cartRepo, &fakeOrderRepo{}, &fakeOutboxRepo{}, newFakeProductRepo(), nil, testPricingCfg(), nopLogger{})

	view, err := uc.Preview(context.Background(), "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	// 10000 - 1000 + 599, налог 8% от 9000 = 720
	want := struct{ subtotal, discount, shipping, tax, total int64 }{10000, 1000, 599, 720, 10319}
	got := view.Totals
	if got.Subtotal != want.subtotal || got.Discount != want.discount ||
		got.Shipping != want.shipping || got.Tax != want.tax || got.Total != want.total {
		t.Errorf("unexpected breakdown: %+v", got)
	}
}

func TestCheckoutBlocksEmptyCart(t *testing.T) {
	uc := NewCheckoutUC(newFakeCartRepo(), &fakeOrderRepo{}, &fakeOutboxRepo{}, newFakeProductRepo(), nil, testPricingCfg(), nopLogger{})
	ctx := context.Background()

	if _, err := uc.Preview(ctx, "u1"); !errors.Is(err, e.ErrEmptyCart) {
		t.Errorf("preview: expected ErrEmptyCart, got %v", err)
	}
	if _, err := uc.PlaceOrder(ctx, "u1"); !errors.Is(err, e.ErrEmptyCart) {
		t.Errorf("place order: expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutListOrders(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	uc := NewCheckoutUC(newFakeCartRepo(), orderRepo, &fakeOutboxRepo{}, newFakeProductRepo(), nil, testPricingCfg(), nopLogger{})
	ctx := context.Background()

	if _, err := orderRepo.Create(ctx, domain.NewOrder("o1", "u1", nil, 100, 0, 599, 8, 707, "")); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := orderRepo.Create(ctx, domain.NewOrder("o2", "u2", nil, 100, 0, 599, 8, 707, "")); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	orders, err := uc.ListOrders(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Errorf("expected only u1 orders, got %+v", orders)
	}
}

func TestCheckoutListRecentOrders(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	uc := NewCheckoutUC(newFakeCartRepo(), orderRepo, &fakeOutboxRepo{}, newFakeProductRepo(), nil, testPricingCfg(), nopLogger{})
	ctx := context.Background()

	if _, err := orderRepo.Create(ctx, domain.NewOrder("o1", "u1", nil, 100, 0, 599, 8, 707, "")); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := orderRepo.Create(ctx, domain.NewOrder("o2", "u2", nil, 100, 0, 599, 8, 707, "")); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	orders, err := uc.ListRecentOrders(ctx)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("dashboard must see all users' orders, got %d", len(orders))
	}
	if orders[0].ID != "o2" {
		t.Errorf("expected newest order first, got %+v", orders)
	}
}
