package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
)

// HandleDelete handles DELETE /{kind}/{id}
// Only the owner may delete; comments, stocks and tag associations go
// with the post.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
