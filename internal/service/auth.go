package service

import (
	"context"
	"errors"

	"taskdeck/internal/domain"
	"taskdeck/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// UserStore is the slice of the credential store the auth service needs.
// *repository.UserRepository satisfies it; tests inject an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	cost   int
}

func NewAuthService(users UserStore, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, cost: bcryptCost}
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return domain.Validationf("username and password are required")
	}
	if len(password) < minPasswordLen {
		return domain.Validationf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// Register creates a new identity and returns a token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}

	u := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}

	logger.Info("user registered", "user_id", u.ID)
	return s.tokens.Generate(u.ID)
}

// Login checks credentials and returns a fresh token. Unknown username and
// wrong password are deliberately the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			logger.Debug("login failed: unknown username")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		logger.Debug("login failed: password mismatch", "user_id", u.ID)
		return "", domain.ErrBadCredentials
	}

	return s.tokens.Generate(u.ID)
}

// Verify resolves a bearer token to the identity it was issued for.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, domain.ErrTokenMissing
	}

	userID, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// Identity returns the user behind an already-verified id (for GET /me).
func (s *AuthService) Identity(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
