// Package list реализует HTTP-обработчик списка сохраненных постов пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/response"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// Handler обрабатывает HTTP-запросы списка постов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс хранилища постов.
type Service interface {
	ListPosts(ctx context.Context, userID int64) ([]*models.Post, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список сохраненных постов
// @Description Возвращает посты пользователя, новые первыми.
// @Tags Posts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список постов"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Failure 403 {object} response.ErrorResponse "Email не подтвержден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.list"

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

	posts, err := h.service.ListPosts(r.Context(), userID)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load posts"))
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	log.Info("posts listed",
		slog.Int64("user_id", userID),
		slog.Int("count", len(posts)))
	render.JSON(w, r, map[string]any{
		"posts": posts,
	})
}
