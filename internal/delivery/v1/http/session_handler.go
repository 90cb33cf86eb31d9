package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUC
	logger         logger.Logger
}

func NewSessionHandler(sessionUsecase usecase.SessionUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUsecase: sessionUsecase, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// login
//
//	@Summary		Логин
//	@Description	Выдаёт сессию по данным формы. Роль доверяется клиенту.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		credentialsRequest	true	"Данные формы"
//	@Success		200			{object}	SessionResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/auth/login [post]
func (s *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	s.issue(w, r, s.sessionUsecase.Login, http.StatusOK)
}

// register
//
//	@Summary	Регистрация
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		credentialsRequest	true	"Данные формы"
//	@Success	201			{object}	SessionResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/auth/register [post]
func (s *SessionHandler) register(w http.ResponseWriter, r *http.Request) {
	s.issue(w, r, s.sessionUsecase.Register, http.StatusCreated)
}

// logout
//
//	@Summary	Логаут
//	@Tags		auth
//	@Produce	json
//	@Param		X-Session-Token	header	string	true	"Токен сессии"
//	@Success	204
//	@Router		/auth/logout [post]
func (s *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessionUsecase.Logout(r.Context(), r.Header.Get(sessionHeader)); err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// issue — общий путь логина и регистрации: в демо-витрине они различаются
// только статусом ответа.
func (s *SessionHandler) issue(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, req *usecase.CredentialsReq) (*domain.Session, error), status int) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	session, err := fn(r.Context(), &usecase.CredentialsReq{
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, status, NewSessionResponse(session))
}
