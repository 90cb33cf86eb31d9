package usecase

import (
	"context"

	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/pricing"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// CartUseCase реализует операции корзины. Каждая мутация перечитывает
// корзину из хранилища, применяет чистую функцию из pricing и
// перезаписывает ключ целиком.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	coupons     CouponService
	pricingCfg  *cfg.PricingCfg
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	coupons CouponService,
	pricingCfg *cfg.PricingCfg,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		coupons:     coupons,
		pricingCfg:  pricingCfg,
		logger:      logger,
	}
}

// GetCart возвращает корзину с пересчитанной разбивкой (вариант без налога).
func (c *CartUseCase) GetCart(ctx context.Context, userID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(cart), nil
}

// AddLine добавляет товар в корзину с единым правилом слияния по
// (productID, color, size). Пустой вариант заменяется вариантом по
// умолчанию до слияния, поэтому быстрый и детальный пути добавления
// ведут себя одинаково.
func (c *CartUseCase) AddLine(ctx context.Context, req *AddLineReq) (*CartView, error) {
	const op = "CartUseCase.AddLine"

	if req.Quantity < 1 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultColor
	}
	size := req.Size
	if size == "" {
		size = domain.DefaultSize
	}

	cart, err := c.cartRepo.Get(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	candidate := domain.NewCartLine(product.ID, product.Name, product.Price, product.ImageKey, color, size, req.Quantity)
	cart.Lines = pricing.AddOrMergeLine(cart.Lines, *candidate)

	if err := c.cartRepo.Save(ctx, req.UserID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(cart), nil
}

// UpdateQuantity заменяет количество строки. Количество меньше 1 — no-op,
// корзина возвращается без изменений.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, userID string, lineIndex int, quantity int64) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if lineIndex < 0 || lineIndex >= len(cart.Lines) {
		return nil, e.Wrap(op, e.ErrLineNotFound)
	}

	if quantity < 1 {
		return c.view(cart), nil
	}

	cart.Lines = pricing.UpdateQuantity(cart.Lines, lineIndex, quantity)

	if err := c.cartRepo.Save(ctx, userID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(cart), nil
}

// RemoveLine удаляет строку по позиции.
func (c *CartUseCase) RemoveLine(ctx context.Context, userID string, lineIndex int) (*CartView, error) {
	const op = "CartUseCase.RemoveLine"

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if lineIndex < 0 || lineIndex >= len(cart.Lines) {
		return nil, e.Wrap(op, e.ErrLineNotFound)
	}

	cart.Lines = pricing.RemoveLine(cart.Lines, lineIndex)

	if err := c.cartRepo.Save(ctx, userID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(cart), nil
}

// ApplyCoupon проверяет код и сохраняет процент скидки с корзиной.
// Нераспознанный код сбрасывает скидку в 0 и возвращает e.ErrInvalidCoupon —
// вызывающая сторона показывает это встроенным сообщением, не сбоем.
// Пока проверка «в пути», более поздний вызов побеждает: устаревший
// результат не записывается.
func (c *CartUseCase) ApplyCoupon(ctx context.Context, userID, code string) (*CartView, error) {
	const op = "CartUseCase.ApplyCoupon"

	gen := c.coupons.Begin(userID)

	percent, resolveErr := c.coupons.Resolve(ctx, code)

	if !c.coupons.Current(userID, gen) {
		// Нас обогнал более новый вызов — его результат уже записан.
		c.logger.Debugf("stale coupon application discarded. user: %s", userID)
		return c.GetCart(ctx, userID)
	}

	cart, err := c.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if resolveErr != nil {
		cart.CouponCode = ""
		cart.DiscountPercent = 0
		if err := c.cartRepo.Save(ctx, userID, cart); err != nil {
			return nil, e.Wrap(op, err)
		}
		return c.view(cart), e.Wrap(op, resolveErr)
	}

	cart.CouponCode = code
	cart.DiscountPercent = percent

	if err := c.cartRepo.Save(ctx, userID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(cart), nil
}

// view пересчитывает разбивку корзины с нуля (вариант страницы корзины, без налога).
func (c *CartUseCase) view(cart *domain.Cart) *CartView {
	totals := pricing.ComputeTotals(cart.Lines, cart.DiscountPercent, pricing.Options{
		ShippingFeeCents: c.pricingCfg.ShippingFeeCents,
		TaxRate:          c.pricingCfg.TaxRate,
		IncludeTax:       false,
	})

	return NewCartView(cart, totals)
}
