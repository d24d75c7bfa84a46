package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"blogsphere/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	query := `
		INSERT INTO comments (post_id, username, comment_text)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, username, comment_text, created_at
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, req.PostID, req.Username, req.CommentText)
	if err != nil {
		if condition, constraint, ok := constraintViolation(err); ok &&
			condition == foreignKeyViolation && constraint == commentsPostIDFkey {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "create comment")
	}

	return &comment, nil
}

// ListByPostID returns the post's comments oldest first. A post without
// comments, or one that does not exist, yields an empty slice.
func (r *commentRepository) ListByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT id, post_id, username, comment_text, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
	`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, errors.Wrapf(err, "list comments for post %d", postID)
	}

	return comments, nil
}
