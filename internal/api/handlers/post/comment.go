package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
)

// commentRequest is the JSON body for adding a comment.
type commentRequest struct {
	Body string `json:"body"`
}

// commentResponse returns the new comment's id.
type commentResponse struct {
	ID int64 `json:"id"`
}

// HandleComment handles POST /{kind}/{id}/comment
// Comments always dispatch a notification, draft or published.
func (h *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if !decode(w, r, &req) {
		return
	}

	commentID, err := h.comments.Add(r.Context(), id, req.Body)
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse{ID: commentID})
}
