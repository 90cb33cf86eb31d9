package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type FavoritesHandler struct {
	favoritesUsecase usecase.FavoritesUC
	logger           logger.Logger
}

func NewFavoritesHandler(favoritesUsecase usecase.FavoritesUC, logger logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{favoritesUsecase: favoritesUsecase, logger: logger}
}

// list
//
//	@Summary	Избранные товары
//	@Tags		favorites
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии"
//	@Success	200				{object}	FavoritesResponse
//	@Failure	401				{object}	ErrorResponse
//	@Router		/favorites [get]
func (f *FavoritesHandler) list(w http.ResponseWriter, r *http.Request) {
	ids, err := f.favoritesUsecase.List(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		f.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FavoritesResponse{ProductIDs: ids})
}

// toggle
//
//	@Summary		Переключение избранного
//	@Description	Добавляет товар в избранное или убирает его
//	@Tags			favorites
//	@Produce		json
//	@Param			X-Session-Token	header		string	true	"Токен сессии"
//	@Param			productID		path		int		true	"Идентификатор товара"
//	@Success		200				{object}	ToggleFavoriteResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/favorites/{productID} [post]
func (f *FavoritesHandler) toggle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	favorite, err := f.favoritesUsecase.Toggle(r.Context(), sessionFromCtx(r.Context()).UserID, productID)
	if err != nil {
		f.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ToggleFavoriteResponse{ProductID: productID, Favorite: favorite})
}
