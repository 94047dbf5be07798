package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"creatorlab/internal/logger"
	"creatorlab/internal/service"
	"creatorlab/internal/transport/rest/handler"
	"creatorlab/internal/transport/rest/middleware"
	"creatorlab/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	FeedbackService *service.FeedbackService
	ContentService  *service.ContentService
	InsightService  *service.InsightService
	WSHub           *ws.Hub
	Logger          *logger.Logger
	CORSOrigins     string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	log := c.Logger
	if log == nil {
		log = logger.Nop()
	}
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, log)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService, c.InsightService, log)
	contentHandler := handler.NewContentHandler(c.ContentService, c.InsightService, log)
	wsHandler := ws.NewHandler(c.WSHub, c.ContentService, log)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))
	r.Use(requestLogger(log))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/session", authHandler.StartSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/feedback", feedbackHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/ai/categories", feedbackHandler.SuggestCategories).Methods("POST", "OPTIONS")
	v1.HandleFunc("/contents", contentHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/contents/{id}", contentHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/contents/{id}/community-summary", contentHandler.CommunitySummary).Methods("GET", "OPTIONS")
	v1.HandleFunc("/authors/{name}/contents", contentHandler.ListByAuthor).Methods("GET", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")
	v1.HandleFunc("/ws/contents/{id}", wsHandler.ContentWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Creator routes (require creator session)
	creatorRoutes := v1.NewRoute().Subrouter()
	creatorRoutes.Use(authMW.RequireCreator)

	creatorRoutes.HandleFunc("/contents", contentHandler.Publish).Methods("POST", "OPTIONS")
	creatorRoutes.HandleFunc("/contents/{id}/comments", contentHandler.AddComment).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// websocket upgrades need the raw writer
			if r.Header.Get("Upgrade") != "" {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
