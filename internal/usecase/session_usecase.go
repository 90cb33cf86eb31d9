package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// SessionUseCase выдаёт и разрешает сессии. Аутентификации по хранилищу
// нет: роль доверяется клиенту, проверяется лишь заполненность формы.
type SessionUseCase struct {
	sessionRepo SessionRepository
	logger      logger.Logger
}

func NewSessionUC(sessionRepo SessionRepository, logger logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Login выдаёт новую сессию по данным формы.
func (s *SessionUseCase) Login(ctx context.Context, req *CredentialsReq) (*domain.Session, error) {
	const op = "SessionUseCase.Login"

	session, err := s.issue(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Infof("session issued. user: %s, role: %s", session.UserID, session.Role)
	return session, nil
}

// Register в демо-витрине не отличается от логина ничем, кроме пути:
// пользователь не сохраняется, сессия выдаётся сразу.
func (s *SessionUseCase) Register(ctx context.Context, req *CredentialsReq) (*domain.Session, error) {
	const op = "SessionUseCase.Register"

	session, err := s.issue(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Infof("session issued for new user. user: %s, role: %s", session.UserID, session.Role)
	return session, nil
}

// Logout удаляет сессию. Отсутствующий токен не считается ошибкой.
func (s *SessionUseCase) Logout(ctx context.Context, token string) error {
	const op = "SessionUseCase.Logout"

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Resolve возвращает сессию по токену для защищённых страниц.
func (s *SessionUseCase) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	const op = "SessionUseCase.Resolve"

	if token == "" {
		return nil, e.Wrap(op, e.ErrSessionNotFound)
	}

	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

func (s *SessionUseCase) issue(ctx context.Context, req *CredentialsReq) (*domain.Session, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, e.ErrMissingFields
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, e.ErrStatusBadRequest
	}

	session := domain.NewSession(uuid.NewString(), email, role)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
