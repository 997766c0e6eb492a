// Package server provides the HTTP REST API for the interview evaluator.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-evaluator/internal/config"
	"github.com/jonathan/interview-evaluator/internal/db"
	"github.com/jonathan/interview-evaluator/internal/evaluation"
	"github.com/jonathan/interview-evaluator/internal/llm"
	"github.com/jonathan/interview-evaluator/internal/notify"
	"github.com/jonathan/interview-evaluator/internal/server/middleware"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// EvaluationRunner runs a full interview evaluation on behalf of a caller.
type EvaluationRunner interface {
	Run(ctx context.Context, docID string, callerID uuid.UUID) ([]types.Question, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	store       evaluation.DocumentStore
	evalService EvaluationRunner
	llmClient   llm.Client
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance from the service configuration.
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmConfig := &llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	}
	llmClient, err := llm.NewClient(context.Background(), llmConfig, cfg.LLMAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var notifier notify.Notifier
	if cfg.NotifyEndpoint != "" {
		notifier = notify.NewHTTPNotifier(cfg.NotifyEndpoint, cfg.NotifyAPIKey)
	}

	s := &Server{
		database:    database,
		store:       database,
		llmClient:   llmClient,
		evalService: evaluation.NewService(database, evaluation.NewEvaluator(llmClient), notifier, cfg.NotifyTopic),
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Long write timeout: an evaluation awaits one model call per question.
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /health", s.handleHealth)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("POST /interviews/{id}/evaluate", requireAuth(http.HandlerFunc(s.handleEvaluateInterview)))
	mux.Handle("GET /interviews/{id}", requireAuth(http.HandlerFunc(s.handleGetInterview)))

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.database.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes a categorized error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message, "code": code})
}
