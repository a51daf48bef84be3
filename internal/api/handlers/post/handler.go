package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teamlog/internal/api/handlers"
	"teamlog/internal/core/comments"
	"teamlog/internal/core/posts"
	"teamlog/internal/core/stocks"
)

// maxBodySize caps request bodies; plain-text posts never get close.
const maxBodySize = 1 * 1024 * 1024

// Handler serves the HTTP surface for one post kind. The same type
// backs /post and /nippo; only the kind differs.
type Handler struct {
	posts    posts.Service
	comments comments.Service
	stocks   stocks.Service
	kind     posts.Kind
}

// NewHandler creates a handler for the given kind.
func NewHandler(postService posts.Service, commentService comments.Service, stockService stocks.Service, kind posts.Kind) *Handler {
	return &Handler{
		posts:    postService,
		comments: commentService,
		stocks:   stockService,
		kind:     kind,
	}
}

// decode parses a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}

// pathID parses the {id} route parameter.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Malformed post id")
		return 0, false
	}
	return id, true
}

// pageParam reads the 1-based ?page= query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// writeJSON writes a JSON success response.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent; nothing left to do but log.
		log.Printf("Failed to encode response: %v", err)
	}
}
