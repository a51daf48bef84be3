package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
	"teamlog/internal/core/posts"
)

// draftsResponse lists the caller's unpublished posts.
type draftsResponse struct {
	Posts []*posts.Post `json:"posts"`
}

// HandleDrafts handles GET /draft/list
func (h *Handler) HandleDrafts(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.Drafts(r.Context())
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, draftsResponse{Posts: items})
}
