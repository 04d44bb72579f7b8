package service

import (
	"context"
	"errors"

	"github.com/blogforge/backend/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
)

// UserStore is the persistence surface the user service needs. *db.Postgres
// satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID int64, username, email *string) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// PostStore is the persistence surface the post service needs. *db.Postgres
// satisfies it.
type PostStore interface {
	CreatePost(ctx context.Context, title, body string, userID int64) (*model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByUser(ctx context.Context, userID int64) ([]model.Post, error)
	UpdatePost(ctx context.Context, postID int64, title, body *string) (*model.Post, error)
	DeletePost(ctx context.Context, postID int64) (bool, error)
}
