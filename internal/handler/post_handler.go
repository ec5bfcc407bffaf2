package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"chirp/internal/service"
	"chirp/internal/validation"
)

type CreatePostRequest struct {
	Content string `json:"content"`
}

// pathID достает id из пути; неправильный формат равносилен отсутствию записи
func pathID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := validation.PostContent(req.Content); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), viewerID, req.Content)
	if err != nil {
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "Post not found.", http.StatusNotFound)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), viewerID, postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "Post not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "Post not found.", http.StatusNotFound)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), viewerID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			WriteError(w, "Post not found.", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Forbidden", http.StatusForbidden)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// engagementAction - общий каркас для like/unlike/retweet/unretweet
func (h *Handlers) engagementAction(w http.ResponseWriter, r *http.Request, action func(viewerID, postID string) error) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "Post not found.", http.StatusNotFound)
		return
	}

	if err := action(viewerID, postID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "Post not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	h.engagementAction(w, r, func(viewerID, postID string) error {
		return h.PostService.Like(r.Context(), viewerID, postID)
	})
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	h.engagementAction(w, r, func(viewerID, postID string) error {
		return h.PostService.Unlike(r.Context(), viewerID, postID)
	})
}

func (h *Handlers) RetweetPost(w http.ResponseWriter, r *http.Request) {
	h.engagementAction(w, r, func(viewerID, postID string) error {
		return h.PostService.Retweet(r.Context(), viewerID, postID)
	})
}

func (h *Handlers) UnretweetPost(w http.ResponseWriter, r *http.Request) {
	h.engagementAction(w, r, func(viewerID, postID string) error {
		return h.PostService.Unretweet(r.Context(), viewerID, postID)
	})
}
