package main

import (
	"fmt"
	"log"
	"chirp/cmd/app"
	"chirp/internal/config"
	handlers "chirp/internal/handler"
	"chirp/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, sessions, services := app.App(cfg)
	defer db.CloseDB()
	defer sessions.Close()

	handler := handlers.NewHandlers(services, sessions, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/signup", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/forgot-password", handler.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/reset-password", handler.ResetPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", handler.Me).Methods(http.MethodGet)

	router.HandleFunc("/api/feed/for-you", handler.ForYouFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/feed/following", handler.FollowingFeed).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/like", handler.UnlikePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/retweet", handler.RetweetPost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/retweet", handler.UnretweetPost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/replies", handler.CreateReply).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/replies", handler.ListReplies).Methods(http.MethodGet)

	router.HandleFunc("/api/replies/{id}", handler.DeleteReply).Methods(http.MethodDelete)

	// /me routes are registered before /{id} so "me" is not parsed as an id
	router.HandleFunc("/api/users/me", handler.UpdateProfile).Methods(http.MethodPatch)
	router.HandleFunc("/api/users/me/avatar", handler.UpdateAvatar).Methods(http.MethodPatch)
	router.HandleFunc("/api/users/{id}", handler.GetProfile).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}/follow", handler.UnfollowUser).Methods(http.MethodDelete)
	router.HandleFunc("/api/users/{id}/block", handler.BlockUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}/block", handler.UnblockUser).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(sessions, cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
