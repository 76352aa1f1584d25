package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"subtrack/internal/auth"
	apperrors "subtrack/internal/errors"
	"subtrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockResetStore is a mock implementation of auth.ResetStore.
type MockResetStore struct {
	mock.Mock
}

func (m *MockResetStore) Issue(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockResetStore) Consume(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		displayName   string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:        "successful signup",
			email:       "test@example.com",
			password:    "password123",
			displayName: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already taken",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockResetStore))

			user, token, err := service.Signup(context.Background(), tt.email, tt.password, tt.displayName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.displayName, user.Name)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)

				// Token subject matches the created user's id.
				subject, verr := jwtService.Verify(token)
				require.NoError(t, verr)
				assert.Equal(t, user.ID, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockResetStore))

			user, token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password are indistinguishable.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)

				subject, verr := jwtService.Verify(token)
				require.NoError(t, verr)
				assert.Equal(t, userID, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("unknown email yields no token and no error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound)
		mockStore := new(MockResetStore)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockStore)
		token, err := service.RequestPasswordReset(context.Background(), "ghost@example.com")

		require.NoError(t, err)
		assert.Empty(t, token)
		mockStore.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("known email issues a token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{Email: "test@example.com"}, nil)
		mockStore := new(MockResetStore)
		mockStore.On("Issue", mock.Anything, "test@example.com").Return("reset-token", nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockStore)
		token, err := service.RequestPasswordReset(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, "reset-token", token)
		mockStore.AssertExpectations(t)
	})
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token updates the password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			ID:    userID,
			Email: "test@example.com",
		}, nil)
		mockRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)
		mockStore := new(MockResetStore)
		mockStore.On("Consume", mock.Anything, "reset-token").Return("test@example.com", nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockStore)
		err := service.ConfirmPasswordReset(context.Background(), "reset-token", "new-password")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("consumed token cannot be reused", func(t *testing.T) {
		mockStore := new(MockResetStore)
		mockStore.On("Consume", mock.Anything, "reset-token").Return("", assert.AnError)

		service := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), mockStore)
		err := service.ConfirmPasswordReset(context.Background(), "reset-token", "new-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})
}
