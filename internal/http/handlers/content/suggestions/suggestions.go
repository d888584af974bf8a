// Package suggestions реализует HTTP-обработчик списка тем для вдохновения.
package suggestions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// Handler обрабатывает HTTP-запросы списка тем.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс подбора тем по платформе.
type Service interface {
	Suggestions(platform string) []string
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Темы для постов
// @Description Возвращает список тем под платформу. По умолчанию twitter.
// @Tags Content
// @Produce  json
// @Param platform query string false "Платформа" default(twitter)
// @Success 200 {object} map[string]any "Список тем"
// @Router /api/suggestions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.suggestions"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = "twitter"
	}

	log.Info("suggestions requested", slog.String("platform", platform))
	render.JSON(w, r, map[string]any{
		"suggestions": h.service.Suggestions(platform),
	})
}
