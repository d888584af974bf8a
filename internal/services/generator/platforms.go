package services

// PlatformProfile — фиксированные параметры платформы, управляющие генерацией.
type PlatformProfile struct {
	Name      string
	MaxLength int
	Tone      string
	Hashtags  int
}

// platformProfiles — поддерживаемый набор платформ. Неизвестные значения
// отсекаются валидацией на HTTP-границе; сервис на всякий случай
// откатывается к профилю twitter.
var platformProfiles = map[string]PlatformProfile{
	"twitter": {
		Name:      "X (Twitter)",
		MaxLength: 280,
		Tone:      "concise, witty, engaging",
		Hashtags:  3,
	},
	"linkedin": {
		Name:      "LinkedIn",
		MaxLength: 3000,
		Tone:      "professional, insightful, thought-leadership",
		Hashtags:  5,
	},
	"facebook": {
		Name:      "Facebook",
		MaxLength: 63206,
		Tone:      "conversational, friendly, relatable",
		Hashtags:  3,
	},
	"instagram": {
		Name:      "Instagram",
		MaxLength: 2200,
		Tone:      "visual, inspirational, lifestyle-focused",
		Hashtags:  10,
	},
}

// ProfileFor возвращает профиль платформы; для неизвестной — профиль twitter.
func ProfileFor(platform string) PlatformProfile {
	if profile, ok := platformProfiles[platform]; ok {
		return profile
	}
	return platformProfiles["twitter"]
}

// Platforms возвращает список поддерживаемых платформ для валидации и фронтенда.
func Platforms() []string {
	return []string{"twitter", "linkedin", "facebook", "instagram"}
}
