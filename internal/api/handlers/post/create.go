package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
	"teamlog/internal/core/posts"
)

// createRequest is the JSON body for creating a post.
type createRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Action string `json:"action"`
}

// createResponse returns the new post's id.
type createResponse struct {
	ID int64 `json:"id"`
}

// HandleCreate handles POST /{kind}
// A publish action additionally dispatches a chat notification.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !decode(w, r, &req) {
		return
	}

	id, err := h.posts.Create(r.Context(), posts.CreateRequest{
		Kind:   h.kind,
		Title:  req.Title,
		Body:   req.Body,
		Tags:   req.Tags,
		Action: posts.Action(req.Action),
	})
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{ID: id})
}
