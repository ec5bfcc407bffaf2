package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"chirp/internal/config"
	handlers "chirp/internal/handler"
	"chirp/internal/session"
)

type Middleware func(http.Handler) http.Handler

// SessionMiddleware разрешает cookie сессии через хранилище и кладет
// идентификатор зрителя в контекст запроса
func SessionMiddleware(store session.Store, cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skipping public endpoints
			publicPaths := []string{
				"/",
				"/health",
				"/tables",
				"/api/auth/signup",
				"/api/auth/login",
				"/api/auth/logout",
				"/api/auth/forgot-password",
				"/api/auth/reset-password",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			cookie, err := r.Cookie(cfg.Session.CookieName)
			if err != nil || cookie.Value == "" {
				handlers.WriteError(w, "Authentication required.", http.StatusUnauthorized)
				return
			}

			userID, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					handlers.WriteError(w, "Authentication required.", http.StatusUnauthorized)
					return
				}
				handlers.WriteError(w, "Internal server error.", http.StatusInternalServerError)
				return
			}

			// Adding user data to the context
			ctx := context.WithValue(r.Context(), "userID", userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
