package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"schoolify/internal/domain"
	"schoolify/internal/hasher"
	"schoolify/internal/repository"
	"schoolify/internal/validate"
)

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username, email, password, name string) (*domain.User, error)
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
}

type userService struct {
	users  repository.UserRepository
	hasher hasher.Hasher

	// compared against for unknown usernames so a miss costs one bcrypt run
	decoyHash string
}

func NewUserService(users repository.UserRepository, h hasher.Hasher) UserService {
	decoy, _ := h.Hash(context.Background(), "schoolify-decoy-password")
	return &userService{
		users:     users,
		hasher:    h,
		decoyHash: decoy,
	}
}

func (s *userService) Register(ctx context.Context, username, email, password, name string) (*domain.User, error) {
	req := validate.Registration{
		Username: username,
		Email:    email,
		Password: password,
		Name:     name,
	}
	if err := validate.Register(&req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

// VerifyCredentials returns domain.ErrInvalidCredentials for both unknown
// usernames and wrong passwords. Unknown usernames are compared against a
// decoy hash so both paths cost one bcrypt comparison.
func (s *userService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	if err := validate.Login(username, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.compareDecoy(ctx, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	if err := validate.Profile(&update); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	update.Apply(user)

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, id, current, next string) error {
	if err := validate.Password(next); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(ctx, user.PasswordHash, current); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	hash, err := s.hasher.Hash(ctx, next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

func (s *userService) compareDecoy(ctx context.Context, password string) {
	if s.decoyHash != "" {
		_ = s.hasher.Compare(ctx, s.decoyHash, password)
	}
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
