package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// DashboardHandler — управление товарами и заказами продавца. Все маршруты
// требуют роль agent.
type DashboardHandler struct {
	catalogUsecase  usecase.CatalogUC
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewDashboardHandler(catalogUsecase usecase.CatalogUC, checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{catalogUsecase: catalogUsecase, checkoutUsecase: checkoutUsecase, logger: logger}
}

type updateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // десятичная строка, "599.99"
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// listProducts
//
//	@Summary	Товары продавца
//	@Description	Каталог без фильтра статуса: черновики видны
//	@Tags		dashboard
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии агента"
//	@Param		query			query		string	false	"Подстрока поиска"
//	@Param		category		query		string	false	"Категория или all"
//	@Param		status			query		string	false	"Published | Draft | all"
//	@Param		sort			query		string	false	"Ключ сортировки"
//	@Success	200				{object}	ProductListResponse
//	@Failure	403				{object}	ErrorResponse
//	@Router		/dashboard/products [get]
func (d *DashboardHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := usecase.NewBrowseReq(
		q.Get("query"), q.Get("category"), q.Get("status"), q.Get("sort"),
		parseIntQuery(q.Get("limit"), 0), parseIntQuery(q.Get("offset"), 0),
	)

	res, err := d.catalogUsecase.Browse(r.Context(), req)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductListResponse(res))
}

// listOrders
//
//	@Summary	Последние заказы витрины
//	@Description	Вкладка заказов дашборда: свежие заказы всех покупателей
//	@Tags		dashboard
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии агента"
//	@Success	200				{array}		OrderResponse
//	@Failure	403				{object}	ErrorResponse
//	@Router		/dashboard/orders [get]
func (d *DashboardHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := d.checkoutUsecase.ListRecentOrders(r.Context())
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, NewOrderResponse(&orders[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар с изображениями (multipart/form-data)
//	@Tags			dashboard
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Session-Token	header		string	true	"Токен сессии агента"
//	@Param			name			formData	string	true	"Название товара"
//	@Param			description		formData	string	false	"Описание"
//	@Param			price			formData	number	true	"Цена, десятичная строка"
//	@Param			stock			formData	int		false	"Остаток"
//	@Param			category		formData	string	true	"Категория"
//	@Param			status			formData	string	false	"Published | Draft (по умолчанию Draft)"
//	@Param			images			formData	file	false	"Изображения товара"
//	@Success		201				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/dashboard/products [post]
func (d *DashboardHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		d.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		d.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		d.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := d.catalogUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Stock:       form.Stock,
		Category:    form.Category,
		Status:      form.Status,
		Images:      images,
	})
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// updateProduct
//
//	@Summary	Правка товара
//	@Tags		dashboard
//	@Accept		json
//	@Produce	json
//	@Param		X-Session-Token	header		string					true	"Токен сессии агента"
//	@Param		id				path		int						true	"Идентификатор товара"
//	@Param		product			body		updateProductRequest	true	"Новые значения полей"
//	@Success	200				{object}	ProductResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/dashboard/products/{id} [put]
func (d *DashboardHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	price, err := parsePriceToCents(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := d.catalogUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:          id,
		Name:        body.Name,
		Description: body.Description,
		Price:       price,
		Stock:       body.Stock,
		Category:    body.Category,
		Status:      body.Status,
	})
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// archiveProduct
//
//	@Summary		Архивация товара
//	@Description	Скрывает товар из каталога, не трогая корзины и избранное
//	@Tags			dashboard
//	@Produce		json
//	@Param			X-Session-Token	header	string	true	"Токен сессии агента"
//	@Param			id				path	int		true	"Идентификатор товара"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/dashboard/products/{id} [delete]
func (d *DashboardHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := d.catalogUsecase.ArchiveProduct(r.Context(), id); err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
