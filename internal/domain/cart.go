package domain

// Вариант по умолчанию для быстрого добавления с плитки каталога.
// Страница товара передает выбранные пользователем цвет и размер.
const (
	DefaultColor = "Default"
	DefaultSize  = "M"
)

// CartLine — строка корзины: товар + вариант + количество.
// Название, цена и изображение — снапшот на момент добавления.
type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // Центы на момент добавления
	ImageKey  string `json:"image_key"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// SameVariant сообщает, совпадает ли ключ слияния (productID, color, size).
func (l CartLine) SameVariant(other CartLine) bool {
	return l.ProductID == other.ProductID && l.Color == other.Color && l.Size == other.Size
}

// Cart — корзина одного пользователя вместе с активной скидкой.
// Сериализуется в Redis целиком; последняя запись побеждает.
type Cart struct {
	Lines           []CartLine `json:"lines"`
	CouponCode      string     `json:"coupon_code,omitempty"`
	DiscountPercent int64      `json:"discount_percent"`
}

func NewCartLine(productID int64, name string, price int64, imageKey, color, size string, quantity int64) *CartLine {
	return &CartLine{
		ProductID: productID,
		Name:      name,
		Price:     price,
		ImageKey:  imageKey,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	}
}
