package services

import "github.com/magabrotheeeer/vibe-terminal/internal/models"

// topicSuggestions — подборки тем по платформам.
var topicSuggestions = map[string][]string{
	"twitter": {
		"AI and the future of work",
		"Productivity hacks for remote teams",
		"The rise of sustainable tech",
		"Mental health in the digital age",
		"Web3 and decentralization",
	},
	"linkedin": {
		"Leadership lessons from 2025",
		"Building resilient teams",
		"The future of professional development",
		"Navigating career transitions",
		"Innovation in enterprise software",
	},
	"facebook": {
		"Weekend wellness tips",
		"Family traditions that matter",
		"Local community initiatives",
		"Home cooking adventures",
		"Travel memories and recommendations",
	},
	"instagram": {
		"Morning routine inspiration",
		"Minimalist lifestyle tips",
		"Creative workspace setups",
		"Fitness journey milestones",
		"Sustainable fashion choices",
	},
}

// famousQuotes — статичная лента цитат для фронтенда.
var famousQuotes = []models.Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Text: "Your time is limited, don't waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
}

// Suggestions возвращает темы для платформы; для неизвестной — список twitter.
func (s *GeneratorService) Suggestions(platform string) []string {
	if suggestions, ok := topicSuggestions[platform]; ok {
		return suggestions
	}
	return topicSuggestions["twitter"]
}

// Quotes возвращает ленту известных цитат.
func (s *GeneratorService) Quotes() []models.Quote {
	return famousQuotes
}
