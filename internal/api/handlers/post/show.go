package post

import (
	"net/http"

	"teamlog/internal/api/handlers"
	"teamlog/internal/core/comments"
	"teamlog/internal/core/identity"
	"teamlog/internal/core/posts"
)

// showResponse is the full post view: the post, its comments, and the
// viewer's relationship to it.
type showResponse struct {
	Post      *posts.Post         `json:"post"`
	Comments  []*comments.Comment `json:"comments"`
	TagString string              `json:"tagString"`
	Editable  bool                `json:"editable"`
	Stocked   bool                `json:"stocked"`
}

// HandleShow handles GET /{kind}/show/{id}
func (h *Handler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.posts.Get(r.Context(), id)
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	commentList, err := h.comments.ListByPost(r.Context(), id)
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	stocked, err := h.stocks.IsStocked(r.Context(), id)
	if err != nil {
		handlers.HandleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, showResponse{
		Post:      p,
		Comments:  commentList,
		TagString: p.TagString(),
		Editable:  p.EditableBy(identity.FromContext(r.Context())),
		Stocked:   stocked,
	})
}
