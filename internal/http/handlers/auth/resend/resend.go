// Package resend реализует HTTP-обработчик повторной отправки письма с подтверждением.
//
// В отличие от регистрации, где сбой почты лишь логируется, здесь отправка —
// суть операции, поэтому ошибка доставки возвращается клиенту.
package resend

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	services "github.com/magabrotheeeer/vibe-terminal/internal/services/auth"
)

// Request — структура входных данных для повторной отправки письма.
type Request struct {
	Email string `json:"email" validate:"required"`
}

// Handler обрабатывает HTTP-запросы повторной отправки письма.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики повторной отправки.
type Service interface {
	ResendVerification(ctx context.Context, email string) error
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Повторная отправка письма с подтверждением
// @Description Генерирует новый токен подтверждения и отправляет письмо заново.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email пользователя"
// @Success 200 {object} map[string]any "Письмо отправлено"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден или email уже подтвержден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/resend-verification [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.ResendVerification(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrAlreadyVerified),
			errors.Is(err, services.ErrMailDelivery):
			log.Error("resend rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to resend verification email", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to resend verification email"))
		}
		return
	}

	log.Info("verification email resent", slog.String("email", req.Email))
	render.JSON(w, r, map[string]any{
		"message": "Verification email sent. Please check your inbox.",
	})
}
