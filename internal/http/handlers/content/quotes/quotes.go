// Package quotes реализует HTTP-обработчик списка мотивационных цитат.
package quotes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// Handler обрабатывает HTTP-запросы списка цитат.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выдачи цитат.
type Service interface {
	Quotes() []models.Quote
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Мотивационные цитаты
// @Description Возвращает подборку цитат для вдохновения.
// @Tags Content
// @Produce  json
// @Success 200 {object} map[string]any "Список цитат"
// @Router /api/quotes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.quotes"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("quotes requested")
	render.JSON(w, r, map[string]any{
		"quotes": h.service.Quotes(),
	})
}
