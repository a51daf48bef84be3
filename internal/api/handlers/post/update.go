package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
	"teamlog/internal/core/posts"
)

// updateRequest is the JSON body for updating a post. The tag string
// replaces the current tag set.
type updateRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Action string `json:"action"`
}

// HandleUpdate handles PUT /{kind}/{id}
// Publishing an edit dispatches a notification carrying the body diff.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if !decode(w, r, &req) {
		return
	}

	err := h.posts.Update(r.Context(), posts.UpdateRequest{
		ID:     id,
		Title:  req.Title,
		Body:   req.Body,
		Tags:   req.Tags,
		Action: posts.Action(req.Action),
	})
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
