package http

import (
	"context"
	"net/http"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

type ctxKey int

const sessionCtxKey ctxKey = iota

const sessionHeader = "X-Session-Token"

// SessionMiddleware разрешает токен из X-Session-Token в сессию и кладёт её
// в контекст запроса. Без валидной сессии — 401.
func SessionMiddleware(sessionUC usecase.SessionUC, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessionUC.Resolve(r.Context(), r.Header.Get(sessionHeader))
			if err != nil {
				logger.Debugf("session resolve failed: %v", err)
				WriteError(w, e.ErrSessionNotFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey, session)))
		})
	}
}

// RequireAgent пропускает только сессии продавца. Навешивается после
// SessionMiddleware.
func RequireAgent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if session == nil || session.Role != domain.RoleAgent {
			WriteError(w, e.ErrAgentOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionFromCtx(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionCtxKey).(*domain.Session)
	return session
}
