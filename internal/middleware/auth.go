package middleware

import (
	"net/http"

	"github.com/s/courseGallery/internal/handlers"
)

// RequiredAdmin создает Middleware, пускающее дальше только активную
// админ-сессию. Для API отвечаем JSON-ошибкой, а не редиректом.
func RequiredAdmin(h *handlers.Handler) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !h.IsAdmin(r) {
				handlers.JSONError(w, "Admin authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}
