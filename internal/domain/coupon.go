package domain

// Coupon — статическая скидка: код и процент (0–100].
// Без срока действия и лимитов использования; активен максимум один код.
type Coupon struct {
	Code    string
	Percent int64
}

func NewCoupon(code string, percent int64) *Coupon {
	return &Coupon{
		Code:    code,
		Percent: percent,
	}
}
