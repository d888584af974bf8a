// Package vibeterminal собирает приложение: хранилище, миграции, кэш,
// провайдер генерации текста, сервисы и HTTP-сервер.
package vibeterminal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/vibe-terminal/internal/cache"
	"github.com/magabrotheeeer/vibe-terminal/internal/config"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/jwt"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/smtp"
	"github.com/magabrotheeeer/vibe-terminal/internal/metrics"
	"github.com/magabrotheeeer/vibe-terminal/internal/migrations"
	authservice "github.com/magabrotheeeer/vibe-terminal/internal/services/auth"
	generatorservice "github.com/magabrotheeeer/vibe-terminal/internal/services/generator"
	senderservice "github.com/magabrotheeeer/vibe-terminal/internal/services/sender"
	"github.com/magabrotheeeer/vibe-terminal/internal/storage"
	"github.com/magabrotheeeer/vibe-terminal/internal/textgen"
)

// App — HTTP-приложение со всеми зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New инициализирует зависимости и собирает HTTP-сервер.
//
// Redis — необязательная зависимость: при недоступности кэша приложение
// стартует без него, генерация просто не кэшируется.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	var cacheRedis *cache.Cache
	if cfg.RedisConnection.Addr != "" {
		cacheRedis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, content caching disabled", sl.Err(err))
			cacheRedis = nil
		}
	}

	m := metrics.New()
	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.SessionTTL)
	transport := smtp.NewTransport(cfg, logger)

	senderService := senderservice.NewSenderService(cfg, logger, transport)
	authService := authservice.NewAuthService(db, jwtMaker, senderService,
		cfg.Verification.TokenTTL, logger)

	var contentCache generatorservice.ContentCache
	if cacheRedis != nil {
		contentCache = cacheRedis
	}
	generatorService := generatorservice.NewGeneratorService(
		textgen.NewClient(cfg.TextGen), contentCache, m, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, jwtMaker, authService, generatorService, m)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		if a.cache != nil {
			if closeErr := a.cache.Db.Close(); closeErr != nil {
				a.logger.Error("failed to close redis client", sl.Err(closeErr))
			}
		}
		return err
	}
}
