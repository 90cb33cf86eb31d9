package http

import (
	"time"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/usecase"
)

// ProductResponse — товар в ответах API.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	SalesCount  int64  `json:"sales_count"`
	ImageKey    string `json:"image_key,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ProductListResponse — страница каталога с общим размером выборки.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// TotalsResponse — разбивка цены в центах.
type TotalsResponse struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// CartResponse — корзина с пересчитанной разбивкой.
type CartResponse struct {
	Lines           []domain.CartLine `json:"lines"`
	CouponCode      string            `json:"coupon_code,omitempty"`
	DiscountPercent int64             `json:"discount_percent"`
	Totals          TotalsResponse    `json:"totals"`
}

// SessionResponse — выданная сессия.
type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// OrderResponse — оформленный заказ.
type OrderResponse struct {
	ID         string            `json:"id"`
	Lines      []domain.CartLine `json:"lines"`
	Subtotal   int64             `json:"subtotal"`
	Discount   int64             `json:"discount"`
	Shipping   int64             `json:"shipping"`
	Tax        int64             `json:"tax"`
	Total      int64             `json:"total"`
	CouponCode string            `json:"coupon_code,omitempty"`
	CreatedAt  string            `json:"created_at"`
}

// ProfileResponse — профиль покупателя.
type ProfileResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// FavoritesResponse — идентификаторы избранных товаров.
type FavoritesResponse struct {
	ProductIDs []int64 `json:"product_ids"`
}

// ToggleFavoriteResponse — результат переключения избранного.
type ToggleFavoriteResponse struct {
	ProductID int64 `json:"product_id"`
	Favorite  bool  `json:"favorite"`
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.Price,
		Stock:       p.Stock,
		Category:    string(p.Category),
		Status:      string(p.Status),
		SalesCount:  p.SalesCount,
		ImageKey:    p.ImageKey,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func NewProductListResponse(res *usecase.BrowseRes) ProductListResponse {
	products := make([]ProductResponse, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, NewProductResponse(&res.Products[i]))
	}

	return ProductListResponse{
		Products: products,
		Total:    res.Total,
	}
}

func NewCartResponse(view *usecase.CartView) CartResponse {
	return CartResponse{
		Lines:           view.Lines,
		CouponCode:      view.CouponCode,
		DiscountPercent: view.DiscountPercent,
		Totals: TotalsResponse{
			Subtotal: view.Totals.Subtotal,
			Discount: view.Totals.Discount,
			Shipping: view.Totals.Shipping,
			Tax:      view.Totals.Tax,
			Total:    view.Totals.Total,
		},
	}
}

func NewSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		Token:  s.Token,
		UserID: s.UserID,
		Role:   string(s.Role),
	}
}

func NewProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Bio:       p.Bio,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Country:   p.Country,
	}
}

func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		Lines:      o.Lines,
		Subtotal:   o.Subtotal,
		Discount:   o.Discount,
		Shipping:   o.Shipping,
		Tax:        o.Tax,
		Total:      o.Total,
		CouponCode: o.CouponCode,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}
