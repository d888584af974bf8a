package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/vibe-terminal/internal/http/middlewarectx"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSessionHandler_ServeHTTP(t *testing.T) {
	t.Run("returns session user", func(t *testing.T) {
		handler := New(newNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		ctx := context.WithValue(req.Context(), middlewarectx.UserID, int64(1))
		ctx = context.WithValue(ctx, middlewarectx.Email, "user@example.com")
		ctx = context.WithValue(ctx, middlewarectx.EmailVerified, true)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Valid bool `json:"valid"`
			User  struct {
				UserID        int64  `json:"userId"`
				Email         string `json:"email"`
				EmailVerified bool   `json:"emailVerified"`
			} `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, int64(1), resp.User.UserID)
		assert.Equal(t, "user@example.com", resp.User.Email)
		assert.True(t, resp.User.EmailVerified)
	})

	t.Run("missing context gives 401", func(t *testing.T) {
		handler := New(newNoopLogger())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
