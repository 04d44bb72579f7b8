package db

import (
	"context"

	"github.com/blogforge/backend/internal/model"
)

func (db *Postgres) CreatePost(ctx context.Context, title, body string, userID int64) (*model.Post, error) {
	query := `
		INSERT INTO posts (title, body, user_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, title, body, user_id, created_at
	`
	var post model.Post
	err := db.Pool.QueryRow(ctx, query, title, body, userID).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.UserID,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (db *Postgres) GetPostByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT id, title, body, user_id, created_at
		FROM posts
		WHERE id = $1
	`
	var post model.Post
	err := db.Pool.QueryRow(ctx, query, postID).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.UserID,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (db *Postgres) ListPosts(ctx context.Context) ([]model.Post, error) {
	return db.queryPosts(ctx, `
		SELECT id, title, body, user_id, created_at
		FROM posts
		ORDER BY id
	`)
}

func (db *Postgres) ListPostsByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	return db.queryPosts(ctx, `
		SELECT id, title, body, user_id, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY id
	`, userID)
}

func (db *Postgres) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Body,
			&post.UserID,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdatePost overwrites only the non-nil fields and returns the updated row.
// user_id is deliberately not updatable.
func (db *Postgres) UpdatePost(ctx context.Context, postID int64, title, body *string) (*model.Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body)
		WHERE id = $3
		RETURNING id, title, body, user_id, created_at
	`
	var post model.Post
	err := db.Pool.QueryRow(ctx, query, title, body, postID).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.UserID,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (db *Postgres) DeletePost(ctx context.Context, postID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
