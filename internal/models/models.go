// Package models содержит доменные структуры приложения.
package models

import "time"

// User представляет запись пользователя в базе данных.
type User struct {
	ID                       int64
	Email                    string
	PasswordHash             string
	EmailVerified            bool
	VerificationToken        *string
	VerificationTokenExpires *time.Time
	CreatedAt                time.Time
}

// PublicUser — поля пользователя, безопасные для выдачи клиенту.
type PublicUser struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}

// Public возвращает публичное представление пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
	}
}

// Post представляет сохраненный сгенерированный пост.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Platform  string    `json:"platform"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	AsciiArt  string    `json:"ascii_art"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedPost — результат генерации контента для платформы.
type GeneratedPost struct {
	Text     string `json:"text"`
	AsciiArt string `json:"asciiArt"`
	Platform string `json:"platform"`
	Topic    string `json:"topic"`
}

// Quote — известная цитата для ленты вдохновения.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
