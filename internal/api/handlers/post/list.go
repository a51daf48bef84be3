package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
)

// HandleList handles GET /{kind}/list?page=N
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	listing, err := h.posts.List(r.Context(), h.kind, pageParam(r))
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// HandleFeed handles GET /feed?page=N, the cross-kind landing listing.
func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	listing, err := h.posts.Feed(r.Context(), pageParam(r))
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
