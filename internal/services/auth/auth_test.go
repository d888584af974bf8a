package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vibe-terminal/internal/lib/jwt"
	"github.com/magabrotheeeer/vibe-terminal/internal/lib/password"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
	"github.com/magabrotheeeer/vibe-terminal/internal/storage"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, email, passwordHash, verificationToken string,
	tokenExpires time.Time) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, verificationToken, tokenExpires)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) MarkEmailVerified(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepoMock) UpdateVerificationToken(ctx context.Context, userID int64, token string,
	tokenExpires time.Time) error {
	args := m.Called(ctx, userID, token, tokenExpires)
	return args.Error(0)
}

type SenderMock struct {
	mock.Mock
}

func (m *SenderMock) SendVerificationEmail(email, token string) error {
	args := m.Called(email, token)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(users *UserRepoMock, sender *SenderMock) *AuthService {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	return NewAuthService(users, maker, sender, 24*time.Hour, newNoopLogger())
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := new(UserRepoMock)
		sender := new(SenderMock)
		service := newService(users, sender)

		created := &models.User{ID: 1, Email: "user@example.com"}
		users.On("CreateUser", ctx, "user@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(created, nil)
		sender.On("SendVerificationEmail", "user@example.com", mock.Anything).Return(nil)

		result, err := service.Signup(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user@example.com", result.User.Email)
		assert.False(t, result.User.EmailVerified)
		users.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		service := newService(new(UserRepoMock), new(SenderMock))

		_, err := service.Signup(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrValidation)

		_, err = service.Signup(ctx, "user@example.com", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("password too short", func(t *testing.T) {
		service := newService(new(UserRepoMock), new(SenderMock))

		_, err := service.Signup(ctx, "user@example.com", "12345")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("CreateUser", ctx, "user@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrUserExists)

		_, err := service.Signup(ctx, "user@example.com", "password123")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("mail failure does not cancel signup", func(t *testing.T) {
		users := new(UserRepoMock)
		sender := new(SenderMock)
		service := newService(users, sender)

		created := &models.User{ID: 2, Email: "user@example.com"}
		users.On("CreateUser", ctx, "user@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(created, nil)
		sender.On("SendVerificationEmail", "user@example.com", mock.Anything).
			Return(errors.New("smtp down"))

		result, err := service.Signup(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.GetHash("password123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("GetUserByEmail", ctx, "user@example.com").
			Return(&models.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

		result, err := service.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user@example.com", result.User.Email)
	})

	t.Run("unknown email and wrong password give the same error", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("GetUserByEmail", ctx, "missing@example.com").
			Return(nil, storage.ErrNotFound)
		users.On("GetUserByEmail", ctx, "user@example.com").
			Return(&models.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

		_, errUnknown := service.Login(ctx, "missing@example.com", "password123")
		_, errWrongPass := service.Login(ctx, "user@example.com", "wrongpassword")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		service := newService(new(UserRepoMock), new(SenderMock))

		_, err := service.Login(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		expires := time.Now().Add(time.Hour)
		token := "sometoken"
		users.On("GetUserByVerificationToken", ctx, token).
			Return(&models.User{ID: 1, Email: "user@example.com",
				VerificationToken:        &token,
				VerificationTokenExpires: &expires}, nil)
		users.On("MarkEmailVerified", ctx, int64(1)).Return(nil)

		email, err := service.VerifyEmail(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", email)
		users.AssertExpectations(t)
	})

	t.Run("empty token", func(t *testing.T) {
		service := newService(new(UserRepoMock), new(SenderMock))

		_, err := service.VerifyEmail(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("GetUserByVerificationToken", ctx, "unknown").
			Return(nil, storage.ErrNotFound)

		_, err := service.VerifyEmail(ctx, "unknown")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		expires := time.Now().Add(-time.Hour)
		users.On("GetUserByVerificationToken", ctx, "expired").
			Return(&models.User{ID: 1, Email: "user@example.com",
				VerificationTokenExpires: &expires}, nil)

		_, err := service.VerifyEmail(ctx, "expired")
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := new(UserRepoMock)
		sender := new(SenderMock)
		service := newService(users, sender)

		users.On("GetUserByEmail", ctx, "user@example.com").
			Return(&models.User{ID: 1, Email: "user@example.com"}, nil)
		users.On("UpdateVerificationToken", ctx, int64(1), mock.Anything, mock.Anything).
			Return(nil)
		sender.On("SendVerificationEmail", "user@example.com", mock.Anything).Return(nil)

		err := service.ResendVerification(ctx, "user@example.com")
		require.NoError(t, err)
		users.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("GetUserByEmail", ctx, "missing@example.com").
			Return(nil, storage.ErrNotFound)

		err := service.ResendVerification(ctx, "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("already verified", func(t *testing.T) {
		users := new(UserRepoMock)
		service := newService(users, new(SenderMock))

		users.On("GetUserByEmail", ctx, "user@example.com").
			Return(&models.User{ID: 1, Email: "user@example.com", EmailVerified: true}, nil)

		err := service.ResendVerification(ctx, "user@example.com")
		assert.ErrorIs(t, err, ErrAlreadyVerified)
	})

	t.Run("mail failure is surfaced", func(t *testing.T) {
		users := new(UserRepoMock)
		sender := new(SenderMock)
		service := newService(users, sender)

		users.On("GetUserByEmail", ctx, "user@example.com").
			Return(&models.User{ID: 1, Email: "user@example.com"}, nil)
		users.On("UpdateVerificationToken", ctx, int64(1), mock.Anything, mock.Anything).
			Return(nil)
		sender.On("SendVerificationEmail", "user@example.com", mock.Anything).
			Return(errors.New("smtp down"))

		err := service.ResendVerification(ctx, "user@example.com")
		assert.ErrorIs(t, err, ErrMailDelivery)
	})
}
