package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
)

// SessionValidator проверяет сессионный ключ из заголовка
type SessionValidator interface {
	ValidateSession(key string) bool
}

// Auth пропускает только запросы с валидным сессионным ключом
// в указанном заголовке
func Auth(validator SessionValidator, header string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validator.ValidateSession(r.Header.Get(header)) {
				handlers.RespondUnauthorized(w, "missing or invalid session key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
