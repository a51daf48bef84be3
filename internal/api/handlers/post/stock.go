package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
)

// HandleStock handles PUT /{kind}/{id}/stock
// Stocking an already-stocked post is a silent no-op.
func (h *Handler) HandleStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.stocks.Stock(r.Context(), id); err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnstock handles DELETE /{kind}/{id}/stock
// Unstocking a post that was never stocked is a silent no-op.
func (h *Handler) HandleUnstock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.stocks.Unstock(r.Context(), id); err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStocked handles GET /stock/list?page=N
func (h *Handler) HandleStocked(w http.ResponseWriter, r *http.Request) {
	listing, err := h.posts.Stocked(r.Context(), pageParam(r))
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
