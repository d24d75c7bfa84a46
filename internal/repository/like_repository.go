package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"blogsphere/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the (post, username) like in a single statement: an existing
// like is deleted, otherwise one is inserted. The unique constraint on the
// pair keeps concurrent toggles from producing duplicates; a losing insert
// falls through ON CONFLICT and the pair stays liked.
func (r *likeRepository) Toggle(ctx context.Context, postID int64, username string) (models.LikeAction, error) {
	query := `
		WITH removed AS (
			DELETE FROM likes
			WHERE post_id = $1::int AND username = $2::varchar
			RETURNING id
		), added AS (
			INSERT INTO likes (post_id, username)
			SELECT $1::int, $2::varchar
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT (post_id, username) DO NOTHING
			RETURNING id
		)
		SELECT CASE WHEN EXISTS (SELECT 1 FROM removed) THEN 'unliked' ELSE 'liked' END AS action
	`

	var action string
	err := r.db.GetContext(ctx, &action, query, postID, username)
	if err != nil {
		if condition, constraint, ok := constraintViolation(err); ok &&
			condition == foreignKeyViolation && constraint == likesPostIDFkey {
			return "", ErrPostNotFound
		}
		return "", errors.Wrapf(err, "toggle like on post %d", postID)
	}

	return models.LikeAction(action), nil
}

func (r *likeRepository) CountByPostID(ctx context.Context, postID int64) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, postID); err != nil {
		return 0, errors.Wrapf(err, "count likes for post %d", postID)
	}

	return count, nil
}
