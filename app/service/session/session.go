// Package session is the identity store. It holds at most one local user:
// registering replaces the current identity, login is a real credential
// match against the stored record, and logout clears it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homegnome/domain/account"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

const tokenTTL = 30 * 24 * time.Hour

type Service struct {
	accounts account.Repository
}

func New(accounts account.Repository) *Service {
	return &Service{accounts: accounts}
}

// Register creates a fresh user with zero completion history and persists it
// as the current identity, replacing any prior one. There is no shared user
// directory, so no uniqueness check exists to perform.
func (s *Service) Register(ctx context.Context, name, phone, password string) (*account.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	u := &account.User{
		ID:             "usr_" + ulid.Make().String(),
		CreatedAt:      now,
		Name:           name,
		Phone:          phone,
		PasswordHash:   string(hash),
		Token:          uuid.New().String(),
		TokenExpiresAt: now.Add(tokenTTL),
	}

	if err := s.accounts.Save(ctx, u); err != nil {
		return nil, err
	}
	log.Infof("registered user %s", u.ID)
	return u, nil
}

// Login compares the presented credentials against the single stored user
// and issues a fresh token on match. It never overwrites the identity.
func (s *Service) Login(ctx context.Context, phone, password string) (*account.User, error) {
	u, err := s.accounts.Current(ctx)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if u.Phone != phone {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	u.Token = uuid.New().String()
	u.TokenExpiresAt = time.Now().Add(tokenTTL)
	if err := s.accounts.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout clears the persisted current-user record.
func (s *Service) Logout(ctx context.Context) error {
	err := s.accounts.Clear(ctx)
	if err == nil {
		log.Info("logged out current user")
	}
	return err
}

// Current resolves a presented session token to the current user.
func (s *Service) Current(ctx context.Context, token string) (*account.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	u, err := s.accounts.Current(ctx)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	if u.Token == "" || u.Token != token || time.Now().After(u.TokenExpiresAt) {
		return nil, ErrNotAuthenticated
	}
	return u, nil
}

// UpdateProfile mutates name and phone of the current user and re-persists.
func (s *Service) UpdateProfile(ctx context.Context, name, phone string) (*account.User, error) {
	u, err := s.accounts.Current(ctx)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	u.Name = name
	u.Phone = phone
	if err := s.accounts.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ExpireStale drops the session token once its expiry has passed, keeping
// the user record itself intact.
func (s *Service) ExpireStale(ctx context.Context) error {
	u, err := s.accounts.Current(ctx)
	if errors.Is(err, account.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if u.Token == "" || time.Now().Before(u.TokenExpiresAt) {
		return nil
	}

	u.Token = ""
	u.TokenExpiresAt = time.Time{}
	if err := s.accounts.Save(ctx, u); err != nil {
		return err
	}
	log.Infof("expired stale session for user %s", u.ID)
	return nil
}
