package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки каталога
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrUnknownCategory = fmt.Errorf("unknown product category")
	ErrUnknownSortKey  = fmt.Errorf("unknown sort key")

	// Ошибки корзины и чекаута
	ErrInvalidCoupon   = fmt.Errorf("coupon code is not recognized")
	ErrEmptyCart       = fmt.Errorf("cart is empty")
	ErrInvalidQuantity = fmt.Errorf("quantity must be positive")
	ErrLineNotFound    = fmt.Errorf("cart line not found")

	// Ошибки сессии
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrAgentOnly       = fmt.Errorf("agent role required")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("required fields are missing")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// Заглушки нереализованных действий
	ErrNotImplemented = fmt.Errorf("feature is not implemented yet")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
