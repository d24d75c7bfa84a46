package service

import (
	"context"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type postService struct {
	postRepo      repository.PostRepository
	previewLength int
}

func NewPostService(postRepo repository.PostRepository, previewLength int) PostService {
	if previewLength <= 0 {
		previewLength = 200
	}
	return &postService{postRepo: postRepo, previewLength: previewLength}
}

// ListPosts returns every post newest first with Preview set and Content
// cleared.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Preview = makePreview(posts[i].Content, p.previewLength)
		posts[i].Content = ""
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	return p.postRepo.Create(ctx, req)
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	return p.postRepo.Delete(ctx, postID)
}

// makePreview cuts content to at most limit runes and appends "..." when
// anything was cut.
func makePreview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
