package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chirp/internal/service"
	"chirp/internal/validation"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// порядок проверок: имя, пароль, email; первая ошибка завершает запрос
	if err := validation.Username(req.Username); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.Password(req.Password); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.Email(req.Email); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Signup(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			WriteError(w, "Username is already taken.", http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailTaken):
			WriteError(w, "Email is already in use.", http.StatusBadRequest)
		default:
			WriteError(w, "Internal server error.", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"id":       user.UserID,
		"username": user.Username,
		"email":    user.Email,
	}, http.StatusCreated)
}

// Login не раскрывает, что именно не совпало: неизвестное имя и неверный
// пароль дают один и тот же ответ
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid credentials.", http.StatusUnauthorized)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid credentials.", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid credentials.", http.StatusUnauthorized)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	sessionID, err := h.Sessions.Create(r.Context(), user.UserID)
	if err != nil {
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.Cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, map[string]interface{}{
		"id":       user.UserID,
		"username": user.Username,
	}, http.StatusOK)
}

// Logout всегда отвечает 204, даже без сессии
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cfg.Session.CookieName)
	if err == nil && cookie.Value != "" {
		_ = h.Sessions.Destroy(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	account, err := h.AuthService.GetAccount(r.Context(), viewerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "User not found.", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, account, http.StatusOK)
}

func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	// один и тот же ответ для любого email, чтобы не раскрывать аккаунты
	genericMessage := map[string]string{"message": "If an account exists, you will receive an email."}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteSuccess(w, genericMessage, http.StatusOK)
		return
	}

	if err := validation.Email(req.Email); err != nil {
		WriteSuccess(w, genericMessage, http.StatusOK)
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, genericMessage, http.StatusOK)
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		WriteError(w, "Invalid or expired token.", http.StatusBadRequest)
		return
	}

	if err := validation.Password(req.NewPassword); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			WriteError(w, "Invalid or expired token.", http.StatusBadRequest)
			return
		}
		WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
