package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"healthwatch/internal/domain"
)

// Server exposes the latest completed cycle over HTTP. It implements the
// scheduler's Sink: Publish swaps the stored cycle and pushes it to any
// websocket subscribers. Only the newest cycle is kept; there is no history.
type Server struct {
	Logger *zap.Logger
	hub    *hub

	mu     sync.RWMutex
	latest *domain.Cycle
}

func NewServer(l *zap.Logger) *Server {
	return &Server{Logger: l, hub: newHub(l)}
}

func (s *Server) Publish(cycle domain.Cycle) error {
	s.mu.Lock()
	s.latest = &cycle
	s.mu.Unlock()
	s.hub.broadcast(cycle)
	return nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/results", s.handleLatest)
	r.Get("/api/results/stream", s.hub.handleStream)

	return r
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if latest == nil {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         nil,
			"started_at": nil,
			"results":    []domain.CheckResult{},
		})
		return
	}
	_ = json.NewEncoder(w).Encode(latest)
}
