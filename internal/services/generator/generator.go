// Package services реализует генерацию постов для социальных платформ.
//
// Текст запрашивается у внешнего провайдера; любая его ошибка (нет ключа,
// таймаут, сетевой сбой) приводит к детерминированному локальному fallback,
// поэтому операция генерации всегда возвращает валидный результат.
// ASCII-баннер рендерится локально и от провайдера не зависит.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/vibe-terminal/internal/lib/ascii"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/metrics"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
	"github.com/magabrotheeeer/vibe-terminal/internal/textgen"
)

// cacheTTL — срок жизни закэшированного результата генерации.
const cacheTTL = 10 * time.Minute

// Completer описывает контракт внешнего провайдера генерации текста.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ContentCache описывает контракт кэша результатов генерации.
type ContentCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// GeneratorService генерирует посты и сопутствующие данные (темы, цитаты).
type GeneratorService struct {
	provider Completer
	cache    ContentCache // nil, если redis недоступен: генерация работает без кэша
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewGeneratorService создает новый экземпляр GeneratorService.
func NewGeneratorService(provider Completer, cache ContentCache, m *metrics.Metrics,
	log *slog.Logger) *GeneratorService {
	return &GeneratorService{
		provider: provider,
		cache:    cache,
		metrics:  m,
		log:      log,
	}
}

const systemPrompt = "You are a social media expert who creates engaging, authentic posts optimized for different platforms."

// Generate возвращает текст поста и ASCII-баннер для пары (платформа, тема).
func (s *GeneratorService) Generate(ctx context.Context, platform, topic string) (*models.GeneratedPost, error) {
	profile := ProfileFor(platform)
	cacheKey := fmt.Sprintf("post:%s:%s", platform, topic)

	if s.cache != nil {
		var cached models.GeneratedPost
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("content cache read failed", sl.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	text := s.generateText(ctx, platform, topic, profile)

	post := &models.GeneratedPost{
		Text:     truncate(text, profile.MaxLength),
		AsciiArt: ascii.Banner(topic),
		Platform: platform,
		Topic:    topic,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, post, cacheTTL); err != nil {
			s.log.Warn("content cache write failed", sl.Err(err))
		}
	}

	s.metrics.GeneratedPosts.WithLabelValues(platform).Inc()
	return post, nil
}

func (s *GeneratorService) generateText(ctx context.Context, platform, topic string,
	profile PlatformProfile) string {
	prompt := fmt.Sprintf(`Create an engaging social media post for %s about: "%s"

Requirements:
- Tone: %s
- Maximum length: %d characters
- Include %d relevant hashtags at the end
- Make it authentic, engaging, and platform-appropriate
- Use emojis sparingly and naturally
- Don't use quotation marks around the entire post

Just return the post text, nothing else.`,
		profile.Name, topic, profile.Tone, profile.MaxLength, profile.Hashtags)

	text, err := s.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		if !errors.Is(err, textgen.ErrNotConfigured) {
			s.log.Error("text generation provider failed", sl.Err(err))
		}
		s.metrics.FallbackPosts.WithLabelValues(platform).Inc()
		return fallbackPost(platform, topic, profile)
	}
	return text
}
