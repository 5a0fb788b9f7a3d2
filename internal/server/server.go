// Package server provides the HTTP REST API for the recommendation engine.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// Recommender is the core capability the server exposes over HTTP.
type Recommender interface {
	ScoreAndRank(ctx context.Context, req *types.RecommendationRequest) (*types.RecommendationResponse, error)
}

// Server wraps the HTTP listener and its collaborators.
type Server struct {
	httpServer  *http.Server
	recommender Recommender
	logger      *log.Logger
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a server around a recommender.
func New(cfg Config, recommender Recommender, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		recommender: recommender,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Printf("listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
