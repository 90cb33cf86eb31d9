package http

import (
	"net/http"

	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// preview
//
//	@Summary		Предпросмотр чекаута
//	@Description	Разбивка цены с налогом без оформления заказа
//	@Tags			checkout
//	@Produce		json
//	@Param			X-Session-Token	header		string	true	"Токен сессии"
//	@Success		200				{object}	CartResponse
//	@Failure		409				{object}	ErrorResponse	"Пустая корзина"
//	@Router			/checkout/preview [get]
func (c *CheckoutHandler) preview(w http.ResponseWriter, r *http.Request) {
	view, err := c.checkoutUsecase.Preview(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Фиксирует заказ, пишет outbox-событие и очищает корзину
//	@Tags			checkout
//	@Produce		json
//	@Param			X-Session-Token	header		string	true	"Токен сессии"
//	@Success		201				{object}	OrderResponse
//	@Failure		409				{object}	ErrorResponse	"Пустая корзина"
//	@Router			/checkout [post]
func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := c.checkoutUsecase.PlaceOrder(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}

// listOrders
//
//	@Summary	История заказов
//	@Tags		checkout
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии"
//	@Success	200				{array}		OrderResponse
//	@Failure	401				{object}	ErrorResponse
//	@Router		/orders [get]
func (c *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.checkoutUsecase.ListOrders(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, NewOrderResponse(&orders[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// reorder
//
//	@Summary	Повтор заказа (не реализовано)
//	@Tags		checkout
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор заказа"
//	@Failure	501	{object}	ErrorResponse
//	@Router		/orders/{id}/reorder [post]
func (c *CheckoutHandler) reorder(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, e.ErrNotImplemented)
}
