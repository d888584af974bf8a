package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
)

// RequireVerifiedMiddleware пропускает только пользователей с подтвержденным email.
//
// Должен стоять после JWTMiddleware. Возвращает 403 — отдельный от 401 класс
// ошибки, чтобы фронтенд показал экран "подтвердите почту", а не форму входа.
func RequireVerifiedMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verified, ok := r.Context().Value(EmailVerified).(bool)
			if !ok {
				log.Error("email verification status missing from context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			if !verified {
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("Email verification required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
