package services

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// genericHashtags дополняют набор, когда в теме не хватает подходящих слов.
var genericHashtags = []string{"#Viral", "#Trending", "#MustRead", "#Inspiration", "#Growth"}

// fallbackPost — детерминированный локальный генератор на случай недоступности
// провайдера. Гарантирует, что endpoint всегда возвращает валидный пост.
func fallbackPost(platform, topic string, profile PlatformProfile) string {
	var b strings.Builder
	b.WriteString(topic)
	b.WriteString("\n\n")

	switch platform {
	case "twitter":
		b.WriteString("Quick thoughts on this topic. What's your take? 🚀")
	case "linkedin":
		fmt.Fprintf(&b, "I've been reflecting on this lately. In my experience, understanding %s is crucial for professional growth.\n\nKey takeaways:\n• Stay curious\n• Keep learning\n• Share knowledge\n\nWhat's your perspective?",
			strings.ToLower(topic))
	case "facebook":
		b.WriteString("Just wanted to share some thoughts about this! It's been on my mind lately. Would love to hear what you all think! 💭")
	default:
		b.WriteString("Inspired by this idea today ✨\n\nDouble tap if you agree! 👇")
	}

	b.WriteString("\n\n")
	b.WriteString(generateHashtags(topic, profile.Hashtags))

	return truncate(b.String(), profile.MaxLength)
}

// generateHashtags строит хэштеги из значимых слов темы, добирая общие теги
// до нужного количества.
func generateHashtags(topic string, count int) string {
	var tags []string
	for _, word := range strings.Fields(topic) {
		if len(tags) == count {
			break
		}
		if len(word) > 3 {
			tags = append(tags, "#"+nonAlphanumeric.ReplaceAllString(word, ""))
		}
	}

	for _, generic := range genericHashtags {
		if len(tags) == count {
			break
		}
		tags = append(tags, generic)
	}

	return strings.Join(tags, " ")
}

// truncate обрезает текст до max рун с маркером многоточия.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
