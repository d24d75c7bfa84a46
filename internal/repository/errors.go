package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// Constraint names declared in internal/database/schema.sql.
const (
	usersEmailKey       = "users_email_key"
	usersUsernameKey    = "users_username_key"
	postsUserIDFkey     = "posts_user_id_fkey"
	commentsPostIDFkey  = "comments_post_id_fkey"
	likesPostIDFkey     = "likes_post_id_fkey"
	uniqueViolation     = "unique_violation"
	foreignKeyViolation = "foreign_key_violation"
)

// constraintViolation reports the PostgreSQL condition name and constraint
// behind err, if err came from the server.
func constraintViolation(err error) (condition string, constraint string, ok bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", "", false
	}
	return pqErr.Code.Name(), pqErr.Constraint, true
}
