package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// CreatePost вставляет новый сохраненный пост и возвращает созданную запись.
func (s *Storage) CreatePost(ctx context.Context, userID int64, platform, topic, content,
	asciiArt string) (*models.Post, error) {
	const op = "storage.CreatePost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO posts (user_id, platform, topic, content, ascii_art)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, user_id, platform, topic, content, ascii_art, created_at`
	row := s.DB.QueryRowContext(ctx, query, userID, platform, topic, content, asciiArt)

	var p models.Post
	var art sql.NullString
	if err := row.Scan(&p.ID, &p.UserID, &p.Platform, &p.Topic, &p.Content,
		&art, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.AsciiArt = art.String
	return &p, nil
}

// ListPosts возвращает посты пользователя, новые первыми.
func (s *Storage) ListPosts(ctx context.Context, userID int64) ([]*models.Post, error) {
	const op = "storage.ListPosts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, platform, topic, content, ascii_art, created_at
			  FROM posts
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Post
	for rows.Next() {
		var p models.Post
		var art sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &p.Platform, &p.Topic, &p.Content,
			&art, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.AsciiArt = art.String
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemovePost удаляет пост по ID, только если он принадлежит пользователю.
// Отсутствие такой пары (id, user_id) даёт ErrNotFound.
func (s *Storage) RemovePost(ctx context.Context, postID, userID int64) error {
	const op = "storage.RemovePost"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM posts WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
