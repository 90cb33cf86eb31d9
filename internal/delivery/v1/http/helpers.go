package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит сентинельные ошибки в пары статус/сообщение.
// Всё неопознанное схлопывается в 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrLineNotFound):
		return http.StatusNotFound, e.ErrLineNotFound.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusUnauthorized, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrAgentOnly):
		return http.StatusForbidden, e.ErrAgentOnly.Error()
	case errors.Is(err, e.ErrInvalidCoupon):
		return http.StatusUnprocessableEntity, e.ErrInvalidCoupon.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusBadRequest, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrUnknownSortKey):
		return http.StatusBadRequest, e.ErrUnknownSortKey.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrTooManyImages):
		return http.StatusBadRequest, e.ErrTooManyImages.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrNotImplemented):
		return http.StatusNotImplemented, e.ErrNotImplemented.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents переводит строку вида "599.99" или "600" в центы.
// Отклоняет пустые, отрицательные, слишком большие значения и более
// двух знаков после точки.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// ProductForm — распакованные поля multipart-формы товара.
type ProductForm struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
	Category    string
	Status      string
}

func parseProductForm(r *http.Request) (*ProductForm, error) {
	name := r.FormValue("name")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	if name == "" || category == "" || priceStr == "" {
		return nil, e.Wrap(fmt.Sprintf("name: %s, category: %s, price: %s", name, category, priceStr), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	var stock int64
	if stockStr := r.FormValue("stock"); stockStr != "" {
		if _, err := fmt.Sscanf(stockStr, "%d", &stock); err != nil || stock < 0 {
			return nil, e.Wrap("stock", e.ErrStatusBadRequest)
		}
	}

	return &ProductForm{
		Name:        name,
		Description: r.FormValue("description"),
		Price:       priceCents,
		Stock:       stock,
		Category:    category,
		Status:      r.FormValue("status"),
	}, nil
}

// parseImages читает загруженные файлы формы. Изображения необязательны:
// пустой список — валидный товар без фото.
func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
