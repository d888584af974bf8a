// Package generate реализует HTTP-обработчик генерации поста под выбранную платформу.
//
// Маршрут доступен только аутентифицированным пользователям с подтвержденным email.
package generate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// Request — структура входных данных для генерации поста.
type Request struct {
	Platform string `json:"platform" validate:"required,oneof=twitter linkedin facebook instagram"`
	Topic    string `json:"topic" validate:"required"`
}

// Handler обрабатывает HTTP-запросы генерации контента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс генератора контента.
type Service interface {
	Generate(ctx context.Context, platform, topic string) (*models.GeneratedPost, error)
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
// @Summary Генерация поста
// @Description Генерирует текст поста и ASCII-баннер по платформе и теме.
// @Tags Content
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Платформа и тема"
// @Success 200 {object} models.GeneratedPost "Сгенерированный пост"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 403 {object} response.ErrorResponse "Email не подтвержден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/generate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.generate"

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
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	post, err := h.service.Generate(r.Context(), req.Platform, req.Topic)
	if err != nil {
		log.Error("failed to generate post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to generate post"))
		return
	}

	log.Info("post generated",
		slog.String("platform", req.Platform),
		slog.String("topic", req.Topic))
	render.JSON(w, r, post)
}
