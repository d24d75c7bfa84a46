package service

import (
	"context"

	"blogsphere/internal/config"
	"blogsphere/internal/repository"
	"blogsphere/internal/storage"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type Service struct {
	User    UserService
	Post    PostService
	Comment CommentService
	Like    LikeService
	Image   ImageService
	Tables  TablesService
}

// NewService wires every service over its repositories. store may be nil,
// in which case image uploads report ErrStorageDisabled.
func NewService(rep *repository.Repository, db Pinger, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		User:    NewUserService(rep.User),
		Post:    NewPostService(rep.Post, cfg.PreviewLength),
		Comment: NewCommentService(rep.Comment),
		Like:    NewLikeService(rep.Like),
		Image:   NewImageService(store),
		Tables:  NewTablesService(db, rep.Tables),
	}
}
