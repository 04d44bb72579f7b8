package service

import (
	"context"
	"strings"

	"github.com/blogforge/backend/internal/auth"
	"github.com/blogforge/backend/internal/db"
	"github.com/blogforge/backend/internal/model"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 6
	maxPasswordLength = 128
)

type UserService struct {
	store UserStore
	codec *auth.TokenCodec
}

func NewUserService(store UserStore, codec *auth.TokenCodec) *UserService {
	return &UserService{store: store, codec: codec}
}

// Register hashes the credential and creates the user. The plaintext never
// leaves this call; a duplicate username maps to ErrConflict.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, username, email, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credential and issues an access token. An unknown
// username and a wrong password both map to ErrInvalidCredentials so the
// response does not reveal which one it was.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (string, int64, *model.User, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if db.IsNoRows(err) {
			return "", 0, nil, ErrInvalidCredentials
		}
		return "", 0, nil, err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return "", 0, nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", 0, nil, err
	}
	return token, int64(s.codec.TTL().Seconds()), user, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.ListUsers(ctx)
}

// Current resolves the authenticated identity to its user row. A still-valid
// token whose subject row is gone yields ErrNotFound here; the extractor
// never checks existence.
func (s *UserService) Current(ctx context.Context, id auth.Identity) (*model.User, error) {
	return s.Get(ctx, id.UserID)
}

// UpdateProfile is a self operation: the owner is the persisted row itself,
// which by construction is the identity's subject.
func (s *UserService) UpdateProfile(ctx context.Context, id auth.Identity, req model.UpdateUserRequest) (*model.User, error) {
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		if err := validateUsername(trimmed); err != nil {
			return nil, err
		}
		req.Username = &trimmed
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if !auth.MayMutate(id, current.ID) {
		return nil, ErrForbidden
	}

	user, err := s.store.UpdateUser(ctx, current.ID, req.Username, req.Email)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, id auth.Identity) error {
	current, err := s.Get(ctx, id.UserID)
	if err != nil {
		return err
	}
	if !auth.MayMutate(id, current.ID) {
		return ErrForbidden
	}

	deleted, err := s.store.DeleteUser(ctx, current.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidInput
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrInvalidInput
	}
	return nil
}
