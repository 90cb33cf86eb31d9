package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог витрины
//	@Description	Возвращает страницу опубликованных товаров с фильтрацией и сортировкой
//	@Tags			catalog
//	@Produce		json
//	@Param			query		query		string	false	"Подстрока поиска по названию и описанию"
//	@Param			category	query		string	false	"Категория или all"
//	@Param			sort		query		string	false	"newest | oldest | priceHigh | priceLow | bestSelling"
//	@Param			limit		query		int		false	"Размер страницы"
//	@Param			offset		query		int		false	"Смещение страницы"
//	@Success		200			{object}	ProductListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := parseIntQuery(q.Get("limit"), 0)
	offset := parseIntQuery(q.Get("offset"), 0)

	// Публичная витрина видит только опубликованные товары.
	req := usecase.NewBrowseReq(q.Get("query"), q.Get("category"), string(domain.StatusPublished), q.Get("sort"), limit, offset)

	res, err := c.catalogUsecase.Browse(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductListResponse(res))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := c.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// createReview
//
//	@Summary	Отзыв на товар (не реализовано)
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор товара"
//	@Failure	501	{object}	ErrorResponse
//	@Router		/products/{id}/reviews [post]
func (c *CatalogHandler) createReview(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, e.ErrNotImplemented)
}

func parseIntQuery(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}
