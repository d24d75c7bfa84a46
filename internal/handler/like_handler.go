package handlers

import (
	"net/http"
	"strings"
)

type ToggleLikeRequest struct {
	PostID   flexID `json:"post_id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required,max=100"`
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req ToggleLikeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err, "post_id and username required"), http.StatusBadRequest)
		return
	}

	action, err := h.LikeService.ToggleLike(r.Context(), int64(req.PostID), req.Username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"action": action}, http.StatusOK)
}

func (h *Handlers) GetLikes(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "post_id")
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	count, err := h.LikeService.CountLikes(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"total_likes": count}, http.StatusOK)
}
