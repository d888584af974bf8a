// Package metrics содержит счетчики prometheus для генерации контента.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор счетчиков приложения.
type Metrics struct {
	GeneratedPosts *prometheus.CounterVec
	FallbackPosts  *prometheus.CounterVec
	SavedPosts     prometheus.Counter
}

// New регистрирует счетчики в реестре по умолчанию.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith регистрирует счетчики в переданном реестре.
func NewWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		GeneratedPosts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "vibeterminal_generated_posts_total",
			Help: "Number of generated posts by platform.",
		}, []string{"platform"}),
		FallbackPosts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "vibeterminal_fallback_posts_total",
			Help: "Number of posts produced by the local fallback generator.",
		}, []string{"platform"}),
		SavedPosts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vibeterminal_saved_posts_total",
			Help: "Number of posts saved by users.",
		}),
	}
}
