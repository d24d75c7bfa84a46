package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"blogsphere/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// Create inserts a post and returns the stored row joined with the author's
// username, in one round trip.
func (r *PostRepositoryImpl) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	query := `
		WITH inserted AS (
			INSERT INTO posts (user_id, title, content, image_url, category)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, title, content, image_url, category, created_at, updated_at
		)
		SELECT i.id, i.user_id, u.username, i.title, i.content, i.image_url, i.category, i.created_at, i.updated_at
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query,
		req.UserID, req.Title, req.Content, req.ImageURL, req.Category)
	if err != nil {
		if condition, constraint, ok := constraintViolation(err); ok &&
			condition == foreignKeyViolation && constraint == postsUserIDFkey {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "create post")
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
		SELECT p.id, p.user_id, u.username, p.title, p.content, p.image_url, p.category, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrapf(err, "get post %d", postID)
	}

	return &post, nil
}

// List returns every post, newest first.
func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT p.id, p.user_id, u.username, p.title, p.content, p.image_url, p.category, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
	`

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, errors.Wrap(err, "list posts")
	}

	return posts, nil
}

// Delete removes the post; comments and likes go with it via ON DELETE CASCADE.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return errors.Wrapf(err, "delete post %d", postID)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "check deleted rows")
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
