package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chirp/internal/service"
	"chirp/internal/validation"
)

func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := validation.PostContent(req.Content); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.PostService.CreateReply(r.Context(), viewerID, postID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "Post not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, reply, http.StatusCreated)
}

func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
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

	replies, err := h.PostService.ListReplies(r.Context(), viewerID, postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "Post not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, replies, http.StatusOK)
}

func (h *Handlers) DeleteReply(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	replyID, ok := pathID(r)
	if !ok {
		WriteError(w, "Reply not found.", http.StatusNotFound)
		return
	}

	if err := h.PostService.DeleteReply(r.Context(), viewerID, replyID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			WriteError(w, "Reply not found.", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Forbidden", http.StatusForbidden)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
