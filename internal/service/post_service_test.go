package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

func TestMakePreview(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		limit    int
		expected string
	}{
		{name: "short content untouched", content: "hello", limit: 10, expected: "hello"},
		{name: "exact length untouched", content: "hello", limit: 5, expected: "hello"},
		{name: "long content cut", content: "hello world", limit: 5, expected: "hello..."},
		{name: "multibyte runes kept whole", content: "привет мир", limit: 6, expected: "привет..."},
		{name: "empty", content: "", limit: 5, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, makePreview(tt.content, tt.limit))
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List", mock.Anything).Return([]models.Post{
		{PostID: 2, Title: "long", Content: strings.Repeat("a", 250)},
		{PostID: 1, Title: "short", Content: "tiny"},
	}, nil)

	posts, err := NewPostService(repo, 200).ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, strings.Repeat("a", 200)+"...", posts[0].Preview)
	assert.Empty(t, posts[0].Content)
	assert.Equal(t, "tiny", posts[1].Preview)
	assert.Empty(t, posts[1].Content)
}

func TestPostService_DefaultPreviewLength(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List", mock.Anything).Return([]models.Post{{Content: strings.Repeat("b", 201)}}, nil)

	posts, err := NewPostService(repo, 0).ListPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("b", 200)+"...", posts[0].Preview)
}

func TestPostService_PassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPostRepository)
	svc := NewPostService(repo, 200)

	req := models.CreatePostRequest{UserID: 1, Title: "t", Content: "c"}
	repo.On("Create", mock.Anything, req).Return(&models.Post{PostID: 9, Title: "t", Content: "c"}, nil)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&models.Post{PostID: 9, Content: "c"}, nil)
	repo.On("GetByID", mock.Anything, int64(10)).Return(nil, repository.ErrPostNotFound)
	repo.On("Delete", mock.Anything, int64(10)).Return(repository.ErrPostNotFound)

	created, err := svc.CreatePost(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.PostID)

	post, err := svc.GetPost(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "c", post.Content)

	_, err = svc.GetPost(ctx, 10)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	err = svc.DeletePost(ctx, 10)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	repo.AssertExpectations(t)
}
