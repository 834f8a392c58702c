package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pharmacademy/internal/docs"
	"pharmacademy/internal/transport/rest/handler"
	"pharmacademy/internal/transport/rest/middleware"
	"pharmacademy/internal/transport/ws"
)

// UploadsPrefix is where locally stored files are served from
const UploadsPrefix = "/uploads/"

// TokenAuthority handles accounts and validates the tokens it issues
type TokenAuthority interface {
	handler.Authenticator
	middleware.TokenValidator
}

// Container holds all dependencies for the router
type Container struct {
	Auth           TokenAuthority
	Quiz           handler.QuizRunner
	Leaderboard    handler.Leaderboard
	Interactions   handler.InteractionChecker
	Summarizer     handler.Summarizer
	Chat           handler.Assistant
	Users          handler.Profiles
	WSHub          *ws.Hub
	AllowedOrigin  string
	MaxUploadBytes int64
	// UploadsDir is served under UploadsPrefix when set
	UploadsDir string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.Auth)
	quizHandler := handler.NewQuizHandler(c.Quiz, c.Leaderboard)
	interactionHandler := handler.NewInteractionHandler(c.Interactions)
	summarizerHandler := handler.NewSummarizerHandler(c.Summarizer, c.MaxUploadBytes)
	chatHandler := handler.NewChatHandler(c.Chat)
	userHandler := handler.NewUserHandler(c.Users, c.MaxUploadBytes)
	wsHandler := ws.NewHandler(c.WSHub, c.Auth, c.Leaderboard, c.AllowedOrigin)

	authMW := middleware.NewAuthMiddleware(c.Auth)

	// Recoverer runs inside RequestLogger so panics are logged with the request id
	r.Use(middleware.RequestLogger, middleware.Recoverer, corsMiddleware(c.AllowedOrigin))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "success",
			"message":   "PharmAcademy API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	if c.UploadsDir != "" {
		r.PathPrefix(UploadsPrefix).Handler(http.StripPrefix(UploadsPrefix, http.FileServer(http.Dir(c.UploadsDir))))
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/docs/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
	}).Methods("GET")

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	api.HandleFunc("/ws/leaderboard", wsHandler.Leaderboard).Methods("GET")

	// Authenticated routes
	user := api.NewRoute().Subrouter()
	user.Use(authMW.RequireUser)

	user.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")

	user.HandleFunc("/quiz/generate", quizHandler.Generate).Methods("POST", "OPTIONS")
	user.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	user.HandleFunc("/quiz/history", quizHandler.History).Methods("GET", "OPTIONS")
	user.HandleFunc("/quiz/leaderboard", quizHandler.Leaderboard).Methods("GET", "OPTIONS")

	user.HandleFunc("/interaction/check", interactionHandler.Check).Methods("POST", "OPTIONS")
	user.HandleFunc("/interaction/drug/{name}", interactionHandler.DrugInfo).Methods("GET", "OPTIONS")

	user.HandleFunc("/summarizer/upload", summarizerHandler.Upload).Methods("POST", "OPTIONS")
	user.HandleFunc("/summarizer/papers", summarizerHandler.List).Methods("GET", "OPTIONS")
	user.HandleFunc("/summarizer/papers/{id}", summarizerHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/summarizer/papers/{id}", summarizerHandler.Delete).Methods("DELETE", "OPTIONS")

	user.HandleFunc("/chat/message", chatHandler.Send).Methods("POST", "OPTIONS")
	user.HandleFunc("/chat", chatHandler.List).Methods("GET", "OPTIONS")
	user.HandleFunc("/chat/{id}", chatHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/chat/{id}", chatHandler.Delete).Methods("DELETE", "OPTIONS")

	user.HandleFunc("/user/profile", userHandler.Profile).Methods("GET", "OPTIONS")
	user.HandleFunc("/user/profile", userHandler.UpdateProfile).Methods("PUT", "OPTIONS")
	user.HandleFunc("/user/stats", userHandler.Stats).Methods("GET", "OPTIONS")
	user.HandleFunc("/user/activity", userHandler.Activity).Methods("GET", "OPTIONS")
	user.HandleFunc("/user/avatar", userHandler.UploadAvatar).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigin string) mux.MiddlewareFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if allowedOrigin != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
