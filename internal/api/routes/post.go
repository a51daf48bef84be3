package routes

import (
	"github.com/go-chi/chi/v5"

	"teamlog/internal/api/handlers/post"
)

// RegisterPostRoutes mounts the full post surface under prefix
// ("/post" or "/nippo"). Both kinds share the same handler shape.
func RegisterPostRoutes(r chi.Router, prefix string, h *post.Handler) {
	r.Route(prefix, func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/list", h.HandleList)
		r.Get("/show/{id}", h.HandleShow)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
		r.Post("/{id}/comment", h.HandleComment)
		r.Put("/{id}/stock", h.HandleStock)
		r.Delete("/{id}/stock", h.HandleUnstock)
	})
}

// RegisterListingRoutes mounts the kind-independent listing surfaces:
// the cross-kind feed, the caller's stocked posts and drafts.
func RegisterListingRoutes(r chi.Router, h *post.Handler) {
	r.Get("/feed", h.HandleFeed)
	r.Get("/stock/list", h.HandleStocked)
	r.Get("/draft/list", h.HandleDrafts)
}
