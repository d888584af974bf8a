// Package create реализует HTTP-обработчик сохранения поста в библиотеку пользователя.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/metrics"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// Request — структура входных данных для сохранения поста.
//
// AsciiArt необязателен: пост можно сохранить и без баннера.
type Request struct {
	Platform string `json:"platform" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
	Content  string `json:"content" validate:"required"`
	AsciiArt string `json:"asciiArt"`
}

// Handler обрабатывает HTTP-запросы сохранения постов.
type Handler struct {
	log      *slog.Logger
	service  Service
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// Service описывает интерфейс хранилища постов.
type Service interface {
	CreatePost(ctx context.Context, userID int64, platform, topic, content,
		asciiArt string) (*models.Post, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service, m *metrics.Metrics) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		metrics:  m,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сохранение поста
// @Description Сохраняет сгенерированный пост в библиотеку пользователя.
// @Tags Posts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Пост для сохранения"
// @Success 200 {object} map[string]any "Сохраненный пост"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 403 {object} response.ErrorResponse "Email не подтвержден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/posts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id missing from context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

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

	post, err := h.service.CreatePost(r.Context(), userID, req.Platform, req.Topic,
		req.Content, req.AsciiArt)
	if err != nil {
		log.Error("failed to save post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save post"))
		return
	}

	h.metrics.SavedPosts.Inc()
	log.Info("post saved",
		slog.Int64("user_id", userID),
		slog.Int64("post_id", post.ID))
	render.JSON(w, r, map[string]any{
		"message": "Post saved successfully",
		"post":    post,
	})
}
