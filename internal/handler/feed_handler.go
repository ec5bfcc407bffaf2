package handlers

import (
	"net/http"
)

func (h *Handlers) ForYouFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	posts, err := h.FeedService.ForYou(r.Context(), viewerID)
	if err != nil {
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) FollowingFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	items, err := h.FeedService.Following(r.Context(), viewerID)
	if err != nil {
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}
