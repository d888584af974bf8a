// Package session реализует HTTP-обработчик проверки действующей сессии.
//
// Обработчик стоит за JWT middleware: если запрос дошел сюда, токен валиден,
// и остается лишь вернуть данные пользователя из контекста.
package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
)

// Handler обрабатывает HTTP-запросы проверки сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Проверка сессии
// @Description Возвращает данные пользователя, если сессионный токен действителен.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Токен действителен"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Router /api/auth/verify [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, okID := r.Context().Value(middlewarectx.UserID).(int64)
	email, okEmail := r.Context().Value(middlewarectx.Email).(string)
	verified, okVerified := r.Context().Value(middlewarectx.EmailVerified).(bool)
	if !okID || !okEmail || !okVerified {
		log.Error("session data missing from context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	render.JSON(w, r, map[string]any{
		"valid": true,
		"user": map[string]any{
			"userId":        userID,
			"email":         email,
			"emailVerified": verified,
		},
	})
}
