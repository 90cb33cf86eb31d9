package usecase

import (
	"context"
	"encoding/json"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/pricing"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

const orderPlacedEventType = "order.placed"

// recentOrdersLimit ограничивает вкладку заказов дашборда.
const recentOrdersLimit = 50

// CheckoutUseCase оформляет заказ: Editing -> Submitting -> Completed,
// единственный переход вперёд, без отмены и повтора. Completed очищает
// корзину; новая корзина начинается пустой.
type CheckoutUseCase struct {
	cartRepo    CartRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	productRepo ProductRepository
	dbPool      transaction.Transactional
	pricingCfg  *cfg.PricingCfg
	logger      logger.Logger
}

func NewCheckoutUC(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	pricingCfg *cfg.PricingCfg,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		productRepo: productRepo,
		dbPool:      dbPool,
		pricingCfg:  pricingCfg,
		logger:      logger,
	}
}

// Preview возвращает разбивку чекаута (вариант с налогом) без оформления.
// Пустая корзина блокируется: вызывающая сторона показывает empty-state.
func (c *CheckoutUseCase) Preview(ctx context.Context, userID string) (*CartView, error) {
	const op = "CheckoutUseCase.Preview"

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(cart.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	return NewCartView(cart, c.totals(cart)), nil
}

// PlaceOrder проводит чекаут. Заказ и outbox-событие пишутся в одной
// транзакции; корзина удаляется только после коммита (Completed).
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string) (*domain.Order, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	state := domain.CheckoutEditing

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(cart.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	state = domain.CheckoutSubmitting
	totals := c.totals(cart)

	order := domain.NewOrder(
		uuid.NewString(), userID, cart.Lines,
		totals.Subtotal, totals.Discount, totals.Shipping, totals.Tax, totals.Total,
		cart.CouponCode,
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if state != domain.CheckoutCompleted && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := c.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := c.eventPayload(created)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err := c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), orderPlacedEventType, created.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.productRepo.IncrementSales(ctx, lineQuantities(cart.Lines)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	state = domain.CheckoutCompleted

	// Completed очищает корзину. Ошибка удаления не откатывает заказ:
	// ключ перезапишется первой мутацией новой корзины.
	if err := c.cartRepo.Delete(ctx, userID); err != nil {
		c.logger.Warnf("failed to clear cart after checkout. user: %s, order: %s, error: %v",
			userID, created.ID, err)
	}

	c.logger.Infof("order placed. order: %s, user: %s, total_cents: %d", created.ID, userID, created.Total)
	return created, nil
}

// ListOrders возвращает историю заказов пользователя.
func (c *CheckoutUseCase) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	const op = "CheckoutUseCase.ListOrders"

	orders, err := c.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// ListRecentOrders возвращает последние заказы витрины для дашборда продавца.
func (c *CheckoutUseCase) ListRecentOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "CheckoutUseCase.ListRecentOrders"

	orders, err := c.orderRepo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// totals считает разбивку чекаута (с налогом).
func (c *CheckoutUseCase) totals(cart *domain.Cart) pricing.Totals {
	return pricing.ComputeTotals(cart.Lines, cart.DiscountPercent, pricing.Options{
		ShippingFeeCents: c.pricingCfg.ShippingFeeCents,
		TaxRate:          c.pricingCfg.TaxRate,
		IncludeTax:       true,
	})
}

func (c *CheckoutUseCase) eventPayload(order *domain.Order) ([]byte, error) {
	return json.Marshal(OrderPlacedEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.Total,
		Lines:      order.Lines,
		PlacedAt:   time.Now().UTC(),
	})
}

func lineQuantities(lines []domain.CartLine) map[int64]int64 {
	quantities := make(map[int64]int64, len(lines))
	for _, line := range lines {
		quantities[line.ProductID] += line.Quantity
	}
	return quantities
}
