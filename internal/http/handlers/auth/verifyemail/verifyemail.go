// Package verifyemail реализует HTTP-обработчик подтверждения email по токену из письма.
package verifyemail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	services "github.com/magabrotheeeer/vibe-terminal/internal/services/auth"
)

// Handler обрабатывает HTTP-запросы подтверждения email.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подтверждения email.
type Service interface {
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтверждение email
// @Description Подтверждает email по одноразовому токену из письма.
// @Tags Auth
// @Produce  json
// @Param token query string true "Токен подтверждения"
// @Success 200 {object} map[string]any "Email подтвержден"
// @Failure 400 {object} response.ErrorResponse "Токен отсутствует, недействителен или просрочен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/verify-email [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verifyemail"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := r.URL.Query().Get("token")

	email, err := h.service.VerifyEmail(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken),
			errors.Is(err, services.ErrTokenExpired):
			log.Error("verification rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to verify email", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to verify email"))
		}
		return
	}

	log.Info("email verified", slog.String("email", email))
	render.JSON(w, r, map[string]any{
		"message": "Email verified successfully!",
		"email":   email,
	})
}
