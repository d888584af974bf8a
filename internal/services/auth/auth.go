// Package services содержит логику бизнес-уровня для регистрации, входа
// и подтверждения email.
//
// Жизненный цикл пользователя: Unregistered → PendingVerification → Verified.
// Ошибки выражены типовыми значениями, которые HTTP-слой переводит
// в статус-коды; внутренние детали в клиент не утекают.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/vibe-terminal/internal/lib/jwt"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/password"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/sl"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/verification"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
	"github.com/magabrotheeeer/vibe-terminal/internal/storage"
)

// Типовые ошибки аутентификации.
var (
	// ErrValidation — отсутствующие или некорректные входные данные.
	ErrValidation = errors.New("email and password are required")
	// ErrPasswordTooShort — пароль короче минимальной длины.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrUserExists — email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Сообщение одинаково для обоих случаев, чтобы не раскрывать, какой именно.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен подтверждения никому не принадлежит.
	ErrInvalidToken = errors.New("invalid verification token")
	// ErrTokenExpired — срок действия токена подтверждения истек.
	ErrTokenExpired = errors.New("verification token has expired")
	// ErrAlreadyVerified — email уже подтвержден.
	ErrAlreadyVerified = errors.New("email is already verified")
	// ErrUserNotFound — пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrMailDelivery — не удалось отправить письмо подтверждения.
	ErrMailDelivery = errors.New("failed to send verification email")
)

const minPasswordLen = 6

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, email, passwordHash, verificationToken string,
		tokenExpires time.Time) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByVerificationToken возвращает владельца токена или storage.ErrNotFound.
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)

	// MarkEmailVerified помечает email подтвержденным и очищает поля токена.
	MarkEmailVerified(ctx context.Context, userID int64) error

	// UpdateVerificationToken перезаписывает токен и срок его действия.
	UpdateVerificationToken(ctx context.Context, userID int64, token string,
		tokenExpires time.Time) error
}

// EmailSender описывает контракт отправки письма подтверждения.
type EmailSender interface {
	SendVerificationEmail(email, token string) error
}

// AuthService отвечает за регистрацию, вход и подтверждение email.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	sender   EmailSender
	tokenTTL time.Duration
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, sender EmailSender,
	verificationTokenTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		sender:   sender,
		tokenTTL: verificationTokenTTL,
		log:      log,
	}
}

// AuthResult — сессионный токен и публичные поля пользователя.
type AuthResult struct {
	Token string
	User  models.PublicUser
}

// Signup создает нового пользователя в состоянии PendingVerification и сразу
// выдает сессионный токен. Ошибка отправки письма логируется, но регистрацию
// не отменяет: письмо можно переотправить через ResendVerification.
func (s *AuthService) Signup(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	const op = "auth.Signup"

	if email == "" || rawPassword == "" {
		return nil, ErrValidation
	}
	if len(rawPassword) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	verificationToken, err := verification.NewToken()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tokenExpires := time.Now().Add(s.tokenTTL)

	user, err := s.users.CreateUser(ctx, email, hashed, verificationToken, tokenExpires)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sender.SendVerificationEmail(user.Email, verificationToken); err != nil {
		s.log.Error("failed to send verification email", slog.String("email", user.Email), sl.Err(err))
	}

	sessionToken, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{Token: sessionToken, User: user.Public()}, nil
}

// Login проверяет пароль пользователя и выдает сессионный токен.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	const op = "auth.Login"

	if email == "" || rawPassword == "" {
		return nil, ErrValidation
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{Token: sessionToken, User: user.Public()}, nil
}

// VerifyEmail подтверждает email по одноразовому токену и возвращает email
// владельца. Токен очищается при первом успехе: повторный вызов с тем же
// токеном дает ErrInvalidToken.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	const op = "auth.VerifyEmail"

	if token == "" {
		return "", ErrInvalidToken
	}

	user, err := s.users.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if user.VerificationTokenExpires == nil || time.Now().After(*user.VerificationTokenExpires) {
		return "", ErrTokenExpired
	}

	if err := s.users.MarkEmailVerified(ctx, user.ID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return user.Email, nil
}

// ResendVerification генерирует свежий токен (прежний становится
// недействительным) и отправляет письмо повторно. В отличие от Signup ошибка
// доставки здесь пробрасывается: переотправка письма — единственный эффект операции.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	const op = "auth.ResendVerification"

	if email == "" {
		return ErrValidation
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	verificationToken, err := verification.NewToken()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tokenExpires := time.Now().Add(s.tokenTTL)

	if err := s.users.UpdateVerificationToken(ctx, user.ID, verificationToken, tokenExpires); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sender.SendVerificationEmail(user.Email, verificationToken); err != nil {
		s.log.Error("failed to resend verification email", slog.String("email", user.Email), sl.Err(err))
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}
