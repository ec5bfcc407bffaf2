package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chirp/internal/service"
	"chirp/internal/storage"
	"chirp/internal/validation"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	userID, ok := pathID(r)
	if !ok {
		WriteError(w, "User not found.", http.StatusNotFound)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), viewerID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "User not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

// relationAction - общий каркас для follow/unfollow/block/unblock
func (h *Handlers) relationAction(w http.ResponseWriter, r *http.Request, selfMessage string, action func(viewerID, targetID string) error) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	targetID, ok := pathID(r)
	if !ok {
		WriteError(w, "User not found.", http.StatusNotFound)
		return
	}

	if err := action(viewerID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfTarget):
			WriteError(w, selfMessage, http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			WriteError(w, "User not found.", http.StatusNotFound)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	h.relationAction(w, r, "You cannot follow yourself.", func(viewerID, targetID string) error {
		return h.UserService.Follow(r.Context(), viewerID, targetID)
	})
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	h.relationAction(w, r, "You cannot follow yourself.", func(viewerID, targetID string) error {
		return h.UserService.Unfollow(r.Context(), viewerID, targetID)
	})
}

func (h *Handlers) BlockUser(w http.ResponseWriter, r *http.Request) {
	h.relationAction(w, r, "You cannot block yourself.", func(viewerID, targetID string) error {
		return h.UserService.Block(r.Context(), viewerID, targetID)
	})
}

func (h *Handlers) UnblockUser(w http.ResponseWriter, r *http.Request) {
	h.relationAction(w, r, "You cannot block yourself.", func(viewerID, targetID string) error {
		return h.UserService.Unblock(r.Context(), viewerID, targetID)
	})
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	// указатели различают "поле не прислали" и "прислали пустое"
	var req struct {
		Username *string `json:"username"`
		Bio      *string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Username != nil {
		if err := validation.Username(*req.Username); err != nil {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.Bio != nil {
		if err := validation.Bio(*req.Bio); err != nil {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	account, err := h.UserService.UpdateProfile(r.Context(), viewerID, req.Username, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			WriteError(w, "Username is already taken.", http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			WriteError(w, "User not found.", http.StatusNotFound)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, account, http.StatusOK)
}

func (h *Handlers) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File must be 2MB or smaller.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Avatar file is required.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	account, err := h.UserService.UpdateAvatar(r.Context(), viewerID, header.Filename, file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedFormat):
			WriteError(w, "Only JPEG and PNG files are allowed.", http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			WriteError(w, "User not found.", http.StatusNotFound)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, account, http.StatusOK)
}
