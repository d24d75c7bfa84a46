package handlers

import (
	"net/http"
	"strings"

	"blogsphere/internal/models"
)

type CreateCommentRequest struct {
	PostID      flexID `json:"post_id" validate:"required,gt=0"`
	Username    string `json:"username" validate:"required,max=100"`
	CommentText string `json:"comment_text" validate:"required"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "post_id")
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"comments": comments}, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.CommentText = strings.TrimSpace(req.CommentText)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err, allFieldsRequiredMsg), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), models.CreateCommentRequest{
		PostID:      int64(req.PostID),
		Username:    req.Username,
		CommentText: req.CommentText,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"comment": comment}, http.StatusCreated)
}
