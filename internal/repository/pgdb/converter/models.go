package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Stock       int64      `db:"stock"`
	Category    string     `db:"category"`
	Status      string     `db:"status"`
	SalesCount  int64      `db:"sales_count"`
	ImageKey    string     `db:"image_key"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	IsArchived  bool       `db:"is_archived"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
// Строки заказа хранятся снимком в JSONB: заказ не меняется после оформления.
type OrderModel struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Lines      []byte    `db:"lines"`
	Subtotal   int64     `db:"subtotal"`
	Discount   int64     `db:"discount"`
	Shipping   int64     `db:"shipping"`
	Tax        int64     `db:"tax"`
	Total      int64     `db:"total"`
	CouponCode string    `db:"coupon_code"`
	CreatedAt  time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     string     `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
