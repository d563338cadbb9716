package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodapp/internal/domain"
	userrepo "foodapp/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("user already exists")
)

// Service handles registration, login and session verification.
type Service struct {
	repo        userrepo.Repository
	signer      tokenSigner
	passwordMin int
}

// New creates a Service signing sessions with the given secret.
func New(repo userrepo.Repository, jwtSecret string) *Service {
	return &Service{
		repo:        repo,
		signer:      tokenSigner{secret: []byte(jwtSecret)},
		passwordMin: 8,
	}
}

// Register creates a user with a bcrypt-hashed credential and returns a
// session token for the new account.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, "", errors.New("email required")
	}
	password = strings.TrimSpace(password)
	if len(password) < s.passwordMin {
		return nil, "", fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.signer.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login validates credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signer.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// VerifySession resolves a bearer token to the user id it asserts. It fails
// with ErrInvalidToken when the token is absent, malformed, carries a bad
// signature, or references a user that no longer exists.
func (s *Service) VerifySession(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	userID, err := s.signer.Verify(token)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return userID, nil
}
