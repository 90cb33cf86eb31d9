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

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addLineRequest struct {
	ProductID int64  `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

// getCart
//
//	@Summary	Корзина с разбивкой цены
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии"
//	@Success	200				{object}	CartResponse
//	@Failure	401				{object}	ErrorResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUsecase.GetCart(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// addLine
//
//	@Summary		Добавление товара в корзину
//	@Description	Пустые color/size заменяются вариантом по умолчанию, совпадающие варианты сливаются
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-Token	header		string			true	"Токен сессии"
//	@Param			line			body		addLineRequest	true	"Строка корзины"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/cart [post]
func (c *CartHandler) addLine(w http.ResponseWriter, r *http.Request) {
	var body addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.AddLine(r.Context(), usecase.NewAddLineReq(
		sessionFromCtx(r.Context()).UserID, body.ProductID, body.Color, body.Size, body.Quantity,
	))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// updateQuantity
//
//	@Summary		Изменение количества строки
//	@Description	Количество меньше 1 игнорируется, корзина возвращается без изменений
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-Token	header		string					true	"Токен сессии"
//	@Param			index			path		int						true	"Позиция строки"
//	@Param			quantity		body		updateQuantityRequest	true	"Новое количество"
//	@Success		200				{object}	CartResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/cart/items/{index} [patch]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.UpdateQuantity(r.Context(), sessionFromCtx(r.Context()).UserID, index, body.Quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// removeLine
//
//	@Summary	Удаление строки корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии"
//	@Param		index			path		int		true	"Позиция строки"
//	@Success	200				{object}	CartResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/cart/items/{index} [delete]
func (c *CartHandler) removeLine(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.RemoveLine(r.Context(), sessionFromCtx(r.Context()).UserID, index)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// applyCoupon
//
//	@Summary		Применение промокода
//	@Description	Нераспознанный код сбрасывает скидку и возвращает 422 с корзиной без скидки
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-Token	header		string				true	"Токен сессии"
//	@Param			coupon			body		applyCouponRequest	true	"Промокод"
//	@Success		200				{object}	CartResponse
//	@Failure		422				{object}	ErrorResponse
//	@Router			/cart/coupon [post]
func (c *CartHandler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var body applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.ApplyCoupon(r.Context(), sessionFromCtx(r.Context()).UserID, body.Code)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}
