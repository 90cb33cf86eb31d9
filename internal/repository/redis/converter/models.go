package converter

import "time"

// CartLineRedisModel — строка корзины в значении ключа cart:<user_id>.
type CartLineRedisModel struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageKey  string `json:"image_key"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// CartRedisModel — корзина целиком. Каждая мутация перезаписывает ключ,
// побеждает последняя запись.
type CartRedisModel struct {
	Lines           []CartLineRedisModel `json:"lines"`
	CouponCode      string               `json:"coupon_code"`
	DiscountPercent int64                `json:"discount_percent"`
}

// ProfileRedisModel — значение ключа profile:<user_id>.
type ProfileRedisModel struct {
	UserID    string `json:"user_id"`
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

// SessionRedisModel — значение ключа session:<token>.
type SessionRedisModel struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
