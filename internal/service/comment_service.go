package service

import (
	"context"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (c *commentService) AddComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	return c.commentRepo.Create(ctx, req)
}

func (c *commentService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := c.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
