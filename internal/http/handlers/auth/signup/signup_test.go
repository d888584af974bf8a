package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vibe-terminal/internal/models"
	services "github.com/magabrotheeeer/vibe-terminal/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Signup(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*services.AuthResult)
	return result, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockResult     *services.AuthResult
		mockErr        error
		wantStatusCode int
		wantToken      string
		wantError      string
	}{
		{
			name:        "valid signup",
			requestBody: Request{Email: "user@example.com", Password: "password123"},
			mockResult: &services.AuthResult{
				Token: "tok",
				User:  models.PublicUser{ID: 1, Email: "user@example.com"},
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "tok",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "missing password",
			requestBody:    Request{Email: "user@example.com"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Password is a required field",
		},
		{
			name:           "short password",
			requestBody:    Request{Email: "user@example.com", Password: "123"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Password is shorter than the allowed minimum",
		},
		{
			name:           "duplicate email",
			requestBody:    Request{Email: "user@example.com", Password: "password123"},
			mockErr:        services.ErrUserExists,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "user already exists",
		},
		{
			name:           "internal error",
			requestBody:    Request{Email: "user@example.com", Password: "password123"},
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			if tt.mockResult != nil || tt.mockErr != nil {
				serviceMock.On("Signup", mock.Anything, "user@example.com", mock.Anything).
					Return(tt.mockResult, tt.mockErr)
			}
			handler := New(newNoopLogger(), serviceMock)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, resp["token"])
				assert.NotEmpty(t, resp["message"])
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
			}
		})
	}
}
