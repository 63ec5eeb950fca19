package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
)

type userContextKey struct{}

// AuthClient интерфейс клиента AuthService
type AuthClient interface {
	Validate(ctx context.Context, token string) (*authservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации по Bearer токену.
// Валидирует токен через AuthService и кладет пользователя в контекст запроса
type Auth struct {
	client AuthClient
	logger Logger
}

// NewAuth создает новый middleware аутентификации
func NewAuth(client AuthClient, logger Logger) *Auth {
	return &Auth{
		client: client,
		logger: logger,
	}
}

// Handler оборачивает обработчик проверкой токена
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			a.logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
			handlers.RespondError(w, http.StatusUnauthorized, "token de acesso ausente")
			return
		}

		user, err := a.client.Validate(r.Context(), token)
		if err != nil {
			a.logger.Warn("Auth: token validation failed for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondError(w, http.StatusUnauthorized, "token de acesso inválido")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext достает аутентифицированного пользователя из контекста
func UserFromContext(ctx context.Context) (*authservice.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*authservice.User)
	return user, ok
}

// extractBearerToken извлекает токен из заголовка Authorization
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
