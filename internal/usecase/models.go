package usecase

import (
	"time"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/pricing"
)

// CATALOG USECASE

// BrowseReq — запрос выборки каталога. Limit <= 0 означает «без ограничения».
type BrowseReq struct {
	Query    string
	Category string
	Status   string
	SortKey  string
	Limit    int
	Offset   int
}

// BrowseRes — страница выдачи и общий размер выборки до нарезки.
type BrowseRes struct {
	Products []domain.Product
	Total    int
}

// CreateProductReq — запрос на создание товара продавцом.
type CreateProductReq struct {
	Name        string
	Description string
	Price       int64 // центы
	Stock       int64
	Category    string
	Status      string
	Images      []ProductImage
}

// UpdateProductReq — правка существующего товара.
type UpdateProductReq struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Stock       int64
	Category    string
	Status      string
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CART USECASE

// AddLineReq — добавление товара в корзину. Пустые Color/Size заменяются
// вариантом по умолчанию (быстрое добавление с плитки каталога).
type AddLineReq struct {
	UserID    string
	ProductID int64
	Color     string
	Size      string
	Quantity  int64
}

// CartView — корзина вместе с пересчитанной разбивкой цены.
type CartView struct {
	Lines           []domain.CartLine
	CouponCode      string
	DiscountPercent int64
	Totals          pricing.Totals
}

// PROFILE USECASE

// UpdateProfileReq — полный набор полей формы профиля.
type UpdateProfileReq struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Bio       string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// SESSION USECASE

// CredentialsReq — данные формы логина/регистрации. Пароль не проверяется
// по хранилищу: роль доверяется клиенту, как и в исходной витрине.
type CredentialsReq struct {
	Email    string
	Password string
	Role     string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEvent — строка транзакционного outbox для Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   string
	OrderID     string
	Payload     []byte // JSON
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedEvent — JSON-полезная нагрузка события оформления заказа.
type OrderPlacedEvent struct {
	EventID    string            `json:"event_id"`
	OrderID    string            `json:"order_id"`
	UserID     string            `json:"user_id"`
	TotalCents int64             `json:"total_cents"`
	Lines      []domain.CartLine `json:"lines"`
	PlacedAt   time.Time         `json:"placed_at"`
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// MAPPERS

func NewBrowseReq(query, category, status, sortKey string, limit, offset int) *BrowseReq {
	return &BrowseReq{
		Query:    query,
		Category: category,
		Status:   status,
		SortKey:  sortKey,
		Limit:    limit,
		Offset:   offset,
	}
}

func NewBrowseRes(products []domain.Product, total int) *BrowseRes {
	return &BrowseRes{
		Products: products,
		Total:    total,
	}
}

func NewAddLineReq(userID string, productID int64, color, size string, quantity int64) *AddLineReq {
	return &AddLineReq{
		UserID:    userID,
		ProductID: productID,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	}
}

func NewCartView(cart *domain.Cart, totals pricing.Totals) *CartView {
	return &CartView{
		Lines:           cart.Lines,
		CouponCode:      cart.CouponCode,
		DiscountPercent: cart.DiscountPercent,
		Totals:          totals,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewOutboxEvent(eventID, eventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
