package service

import (
	"context"
	"strings"

	"github.com/blogforge/backend/internal/auth"
	"github.com/blogforge/backend/internal/db"
	"github.com/blogforge/backend/internal/model"
)

type PostService struct {
	store PostStore
}

func NewPostService(store PostStore) *PostService {
	return &PostService{store: store}
}

// Create sets the post's owner from the authenticated identity. The request
// body carries no owner field and could not override it if it did.
func (s *PostService) Create(ctx context.Context, id auth.Identity, req model.CreatePostRequest) (*model.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	return s.store.CreatePost(ctx, req.Title, req.Body, id.UserID)
}

func (s *PostService) Get(ctx context.Context, postID int64) (*model.Post, error) {
	post, err := s.store.GetPostByID(ctx, postID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.store.ListPosts(ctx)
}

func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	return s.store.ListPostsByUser(ctx, userID)
}

func (s *PostService) ListOwn(ctx context.Context, id auth.Identity) ([]model.Post, error) {
	return s.store.ListPostsByUser(ctx, id.UserID)
}

// Update loads the persisted row first and checks ownership against its
// user_id before writing anything. A store failure during the check
// propagates as-is rather than reading as a denial.
func (s *PostService) Update(ctx context.Context, id auth.Identity, postID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !auth.MayMutate(id, post.UserID) {
		return nil, ErrForbidden
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrInvalidInput
	}
	return s.store.UpdatePost(ctx, post.ID, req.Title, req.Body)
}

// Delete applies the same check-then-act ownership discipline as Update.
func (s *PostService) Delete(ctx context.Context, id auth.Identity, postID int64) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if !auth.MayMutate(id, post.UserID) {
		return ErrForbidden
	}

	deleted, err := s.store.DeletePost(ctx, post.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
