package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gopherblog/internal/model"
	"gopherblog/internal/pkg/jwtutil"
)

var (
	ErrInvalidInput    = errors.New("please fill in all fields")
	ErrUsernameExists  = errors.New("username already exists")
	ErrEmailExists     = errors.New("user already exists")
	ErrUserNotExists   = errors.New("user does not exist")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUserNotFound    = errors.New("user not found")
)

type AuthService struct {
	users         UserStore
	revoked       TokenRevoker
	jwtSecret     string
	jwtExpiration time.Duration
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, revoked TokenRevoker, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		revoked:       revoked,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// TokenTTL reports the configured session token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtExpiration
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	existingByEmail, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrEmailExists
	}

	existingByName, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotExists
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

// Authenticate resolves a session token to its user. It fails with
// ErrInvalidToken for tampered, expired or revoked tokens and with
// ErrUserNotFound when the account behind a valid token is gone.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := jwtutil.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, token)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Logout revokes the token for its remaining lifetime. Unparseable
// tokens are ignored so the operation stays idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" || s.revoked == nil {
		return nil
	}
	claims, err := jwtutil.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil
	}
	ttl := s.jwtExpiration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.revoked.Revoke(ctx, token, ttl)
}
