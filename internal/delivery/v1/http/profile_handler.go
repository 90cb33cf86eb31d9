package http

import (
	"encoding/json"
	"net/http"

	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUC
	logger         logger.Logger
}

func NewProfileHandler(profileUsecase usecase.ProfileUC, logger logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase, logger: logger}
}

type profileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// getProfile
//
//	@Summary	Профиль покупателя
//	@Tags		profile
//	@Produce	json
//	@Param		X-Session-Token	header		string	true	"Токен сессии"
//	@Success	200				{object}	ProfileResponse
//	@Failure	401				{object}	ErrorResponse
//	@Router		/profile [get]
func (p *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := p.profileUsecase.Get(r.Context(), sessionFromCtx(r.Context()).UserID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProfileResponse(profile))
}

// updateProfile
//
//	@Summary		Сохранение профиля
//	@Description	Форма шлёт полный набор полей; профиль перезаписывается целиком
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-Token	header		string			true	"Токен сессии"
//	@Param			request			body		profileRequest	true	"Поля профиля"
//	@Success		200				{object}	ProfileResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/profile [put]
func (p *ProfileHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var body profileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	profile, err := p.profileUsecase.Update(r.Context(), &usecase.UpdateProfileReq{
		UserID:    sessionFromCtx(r.Context()).UserID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Bio:       body.Bio,
		Address:   body.Address,
		City:      body.City,
		State:     body.State,
		ZipCode:   body.ZipCode,
		Country:   body.Country,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProfileResponse(profile))
}
