package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blogforge/backend/internal/model"
)

// fakeStore is an in-memory UserStore + PostStore. Missing rows surface as
// pgx.ErrNoRows and duplicate usernames as a 23505 pg error, matching what
// db.Postgres returns.
type fakeStore struct {
	users      map[int64]model.User
	posts      map[int64]model.Post
	nextUserID int64
	nextPostID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[int64]model.User),
		posts: make(map[int64]model.Post),
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
}

func (f *fakeStore) CreateUser(_ context.Context, username, email, passwordHash string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return nil, uniqueViolation()
		}
	}
	f.nextUserID++
	user := model.User{
		ID:           f.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, userID int64) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) ListUsers(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateUser(_ context.Context, userID int64, username, email *string) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if username != nil {
		for id, u := range f.users {
			if id != userID && u.Username == *username {
				return nil, uniqueViolation()
			}
		}
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	f.users[userID] = user
	return &user, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, userID int64) (bool, error) {
	if _, ok := f.users[userID]; !ok {
		return false, nil
	}
	delete(f.users, userID)
	return true, nil
}

func (f *fakeStore) CreatePost(_ context.Context, title, body string, userID int64) (*model.Post, error) {
	f.nextPostID++
	post := model.Post{
		ID:     f.nextPostID,
		Title:  title,
		Body:   body,
		UserID: userID,
	}
	f.posts[post.ID] = post
	return &post, nil
}

func (f *fakeStore) GetPostByID(_ context.Context, postID int64) (*model.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &post, nil
}

func (f *fakeStore) ListPosts(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListPostsByUser(_ context.Context, userID int64) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdatePost(_ context.Context, postID int64, title, body *string) (*model.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if title != nil {
		post.Title = *title
	}
	if body != nil {
		post.Body = *body
	}
	f.posts[postID] = post
	return &post, nil
}

func (f *fakeStore) DeletePost(_ context.Context, postID int64) (bool, error) {
	if _, ok := f.posts[postID]; !ok {
		return false, nil
	}
	delete(f.posts, postID)
	return true, nil
}
