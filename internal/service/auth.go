package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mywallet/internal/core"
	"mywallet/internal/model"
	"mywallet/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	bcryptCost  int
	sessionTTL  time.Duration
}

// NewAuthService builds the auth service. sessionTTL of zero means sessions
// never expire and live until explicit logout.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	bcryptCost int,
	sessionTTL time.Duration,
) core.AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		bcryptCost:  bcryptCost,
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and mints a fresh opaque session token. An
// unknown email and a wrong password produce the same error so the caller
// cannot tell which one happened. Earlier sessions stay valid.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &model.Session{
		UserID: user.ID,
		Token:  token,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, token, nil
}

// Logout drops every session holding the token. A token with no sessions is
// still a successful logout.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (int64, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || sessionExpired(session, s.sessionTTL) {
		return 0, ErrSessionNotFound
	}
	return session.UserID, nil
}

func sessionExpired(session *model.Session, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return time.Since(session.CreatedAt) > ttl
}
