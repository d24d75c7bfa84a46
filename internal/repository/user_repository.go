package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"blogsphere/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user and fills in the generated id and creation
// time. PasswordHash must already be hashed.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		if condition, constraint, ok := constraintViolation(err); ok && condition == uniqueViolation {
			switch constraint {
			case usersEmailKey:
				return ErrEmailTaken
			case usersUsernameKey:
				return ErrUsernameTaken
			}
		}
		return errors.Wrap(err, "create user")
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, email, password, created_at FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "get user by email")
	}

	return &user, nil
}
