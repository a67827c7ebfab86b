package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
	"github.com/m04kA/SMC-TerminalService/internal/infra/sessionstore"
)

const authTokenHeader = "X-Auth-Token"

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "сессия не найдена или истекла"
	msgForbidden    = "недостаточно прав"
)

type sessionCtxKey struct{}

// SessionStore интерфейс резолва токена в сессию
type SessionStore interface {
	Get(ctx context.Context, token string) (*sessionstore.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет токен из X-Auth-Token и кладет сессию в контекст запроса
func Auth(store SessionStore, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(authTokenHeader)
			if token == "" {
				logger.Warn("Auth: missing token for %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			session, err := store.Get(r.Context(), token)
			if err != nil {
				if errors.Is(err, sessionstore.ErrSessionNotFound) {
					logger.Warn("Auth: unknown token for %s %s", r.Method, r.URL.Path)
					handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
					return
				}
				logger.Error("Auth: session store error: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает запрос только для перечисленных ролей
// Должен стоять после Auth
func RequireRole(logger Logger, roles ...sessionstore.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Auth: role %s denied for %s %s", session.Role, r.Method, r.URL.Path)
			handlers.RespondError(w, http.StatusForbidden, msgForbidden)
		})
	}
}

// SessionFromContext достает сессию, положенную Auth middleware
func SessionFromContext(ctx context.Context) *sessionstore.Session {
	session, _ := ctx.Value(sessionCtxKey{}).(*sessionstore.Session)
	return session
}
