package handlers

import (
	"net/http"
	"strings"

	"blogsphere/internal/models"
)

type CreatePostRequest struct {
	UserID   flexID  `json:"user_id" validate:"required,gt=0"`
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=255"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

const postRequiredMsg = "Title, content, and user_id required"

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"posts": posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"post": post}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.ImageURL = optional(req.ImageURL)
	req.Category = optional(req.Category)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err, postRequiredMsg), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), models.CreatePostRequest{
		UserID:   int64(req.UserID),
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"post": post}, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil, http.StatusOK)
}
