// Package vibeterminal предоставляет маршруты для основного приложения.
package vibeterminal

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/vibe-terminal/internal/config"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/auth/resend"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/auth/session"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/auth/verifyemail"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/content/generate"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/content/quotes"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/content/suggestions"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/health"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/post/create"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/post/list"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/handlers/post/remove"
	"github.com/magabrotheeeer/vibe-terminal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/jwt"
	"github.com/magabrotheeeer/vibe-terminal/internal/metrics"
	authservice "github.com/magabrotheeeer/vibe-terminal/internal/services/auth"
	generatorservice "github.com/magabrotheeeer/vibe-terminal/internal/services/generator"
	"github.com/magabrotheeeer/vibe-terminal/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, db *storage.Storage,
	jwtMaker jwt.Maker, authService *authservice.AuthService,
	generatorService *generatorservice.GeneratorService, m *metrics.Metrics) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/auth/verify-email", verifyemail.New(logger, authService).ServeHTTP)
		r.Post("/auth/resend-verification", resend.New(logger, authService).ServeHTTP)
		r.Get("/suggestions", suggestions.New(logger, generatorService).ServeHTTP)
		r.Get("/quotes", quotes.New(logger, generatorService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, db, logger))
			r.Get("/auth/verify", session.New(logger).ServeHTTP)

			// Группа с подтвержденным email
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireVerifiedMiddleware(logger))
				r.Use(middlewarectx.RateLimitMiddleware(logger))
				r.Post("/generate", generate.New(logger, generatorService).ServeHTTP)
				r.Post("/posts", create.New(logger, db, m).ServeHTTP)
				r.Get("/posts", list.New(logger, db).ServeHTTP)
				r.Delete("/posts/{id}", remove.New(logger, db).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Get("/*", staticHandler(cfg.StaticDir))
}

// staticHandler отдает файлы фронтенда из StaticDir.
//
// Неизвестные пути без расширения получают index.html: маршрутизация
// одностраничного терминала живет на клиенте.
func staticHandler(staticDir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(staticDir))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(staticDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		if strings.Contains(filepath.Base(r.URL.Path), ".") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
