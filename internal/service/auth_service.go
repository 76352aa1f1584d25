package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"subtrack/internal/auth"
	apperrors "subtrack/internal/errors"
	"subtrack/internal/model"
	"subtrack/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login and password reset.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) (token string, err error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	resetStore auth.ResetStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, resetStore auth.ResetStore) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		resetStore: resetStore,
	}
}

// Signup creates a user with a hashed password and returns a session token.
func (s *authService) Signup(ctx context.Context, email, password, name string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a session token. Every failure mode
// collapses to ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}

// Me returns the profile of the authenticated user.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// RequestPasswordReset issues a single-use reset token for an existing
// account. For unknown emails it returns an empty token and no error; the
// handler responds identically either way.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Debug().Msg("password reset requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("look up user: %w", err)
	}

	token, err := s.resetStore.Issue(ctx, email)
	if err != nil {
		return "", fmt.Errorf("issue reset token: %w", err)
	}
	return token, nil
}

// ConfirmPasswordReset redeems a reset token and sets the new password.
// The token is consumed even if the subsequent update fails; a fresh request
// is cheaper than a replayable token.
func (s *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	email, err := s.resetStore.Consume(ctx, token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
