package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogsphere/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error)
	ListByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type LikeRepository interface {
	Toggle(ctx context.Context, postID int64, username string) (models.LikeAction, error)
	CountByPostID(ctx context.Context, postID int64) (int, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Like    LikeRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Like:    NewLikeRepository(db),
		Tables:  NewTablesRepository(db),
	}
}
