package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ginny-app/ginny-server/internal/mail"
	"github.com/ginny-app/ginny-server/internal/storage"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

const (
	demoUserEmail = "demo@ginny.app"
	demoUserName  = "Usuario Demo"
)

// UserService handles user resolution against the connected mailbox.
type UserService struct {
	storage *storage.Storage
	source  mail.Source
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, source mail.Source) *UserService {
	return &UserService{storage: store, source: source}
}

// GetOrCreate resolves the current user from the mailbox profile, creating
// the user on first sight. When the mailbox is unreachable it falls back to
// the shared demo user.
func (s *UserService) GetOrCreate(ctx context.Context) (*User, error) {
	profile, err := s.source.Profile(ctx)
	if err != nil {
		logrus.WithError(err).Info("UserService.GetOrCreate.mailbox not available, using demo user")
		return s.getOrCreateByEmail(ctx, demoUserEmail, demoUserName)
	}

	name := profile.Email
	if at := strings.Index(profile.Email, "@"); at >= 0 {
		name = profile.Email[:at]
	}
	return s.getOrCreateByEmail(ctx, profile.Email, name)
}

// ResolveMailboxUser resolves the user for the connected mailbox without a
// demo fallback. Sync requires a reachable mailbox.
func (s *UserService) ResolveMailboxUser(ctx context.Context) (*User, error) {
	profile, err := s.source.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching mailbox profile: %w", err)
	}

	name := profile.Email
	if at := strings.Index(profile.Email, "@"); at >= 0 {
		name = profile.Email[:at]
	}
	return s.getOrCreateByEmail(ctx, profile.Email, name)
}

func (s *UserService) getOrCreateByEmail(ctx context.Context, email, name string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return userFromStorage(row), nil
	}

	id, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email: email,
		Name:  name,
	})
	if err != nil {
		return nil, err
	}

	return &User{ID: id, Email: email, Name: name}, nil
}

func userFromStorage(row *sqlconfig.User) *User {
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
