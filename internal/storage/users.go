package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// uniqueViolation — код ошибки PostgreSQL для нарушения уникального ограничения.
const uniqueViolation = "23505"

// CreateUser сохраняет нового пользователя с хэшем пароля и токеном подтверждения,
// возвращает созданную запись. Нарушение уникальности email даёт ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, email, passwordHash, verificationToken string,
	tokenExpires time.Time) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, password_hash, verification_token, verification_token_expires)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, email, email_verified, created_at;`
	u := &models.User{
		PasswordHash: passwordHash,
	}
	if err := s.DB.QueryRowContext(ctx, query,
		email, passwordHash, verificationToken, tokenExpires).Scan(
		&u.ID, &u.Email, &u.EmailVerified, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.VerificationToken = &verificationToken
	u.VerificationTokenExpires = &tokenExpires
	return u, nil
}

// GetUserByEmail возвращает пользователя по email или ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, email_verified,
			      verification_token, verification_token_expires, created_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUser возвращает пользователя по его ID или ErrNotFound.
func (s *Storage) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, email_verified,
			      verification_token, verification_token_expires, created_at
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userID), op)
}

// GetUserByVerificationToken возвращает пользователя с данным токеном подтверждения
// или ErrNotFound, если токен никому не принадлежит.
func (s *Storage) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	const op = "storage.GetUserByVerificationToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, email_verified,
			      verification_token, verification_token_expires, created_at
			  FROM users
			  WHERE verification_token = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, token), op)
}

// MarkEmailVerified помечает email подтвержденным и очищает оба поля токена,
// обеспечивая одноразовость токена подтверждения.
func (s *Storage) MarkEmailVerified(ctx context.Context, userID int64) error {
	const op = "storage.MarkEmailVerified"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET email_verified = TRUE,
			      verification_token = NULL,
			      verification_token_expires = NULL
			  WHERE id = $1`
	_, err := s.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateVerificationToken перезаписывает токен подтверждения и срок его действия;
// прежний токен при этом становится недействительным.
func (s *Storage) UpdateVerificationToken(ctx context.Context, userID int64, token string,
	tokenExpires time.Time) error {
	const op = "storage.UpdateVerificationToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET verification_token = $1,
			      verification_token_expires = $2
			  WHERE id = $3`
	_, err := s.DB.ExecContext(ctx, query, token, tokenExpires, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var verificationToken sql.NullString
	var tokenExpires sql.NullTime

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.EmailVerified,
		&verificationToken, &tokenExpires, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if verificationToken.Valid {
		u.VerificationToken = &verificationToken.String
	}
	if tokenExpires.Valid {
		u.VerificationTokenExpires = &tokenExpires.Time
	}
	return u, nil
}
