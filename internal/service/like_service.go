package service

import (
	"context"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type LikeService interface {
	ToggleLike(ctx context.Context, postID int64, username string) (models.LikeAction, error)
	CountLikes(ctx context.Context, postID int64) (int, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (l *likeService) ToggleLike(ctx context.Context, postID int64, username string) (models.LikeAction, error) {
	return l.likeRepo.Toggle(ctx, postID, username)
}

func (l *likeService) CountLikes(ctx context.Context, postID int64) (int, error) {
	return l.likeRepo.CountByPostID(ctx, postID)
}
