package web

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/hanbyul-kim/laborsim/internal/experiment"
)

const cacheTTL = 5 * time.Minute

// Server wires the simulation API, the HTML front page, and the health
// probe behind one rate-limited mux.
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
}

func NewServer(addr string, registry *experiment.Registry, cache Cache) *Server {
	limiter := NewRateLimiter(30, time.Minute)
	simulate := NewSimulateHandler(registry, cache)

	mux := http.NewServeMux()
	mux.HandleFunc("/", Index)
	mux.HandleFunc("/healthz", Health)
	mux.Handle("/api/simulate", RateLimitMiddleware(limiter, http.HandlerFunc(simulate.Simulate)))

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      Observe(mux),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		limiter: limiter,
	}
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

// DefaultAddr returns the listen address, preferring LABORSIM_ADDR.
func DefaultAddr() string {
	if addr := os.Getenv("LABORSIM_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

// CacheFromEnv picks redis when LABORSIM_REDIS_ADDR is set, falling back to
// the in-process cache.
func CacheFromEnv() Cache {
	if addr := os.Getenv("LABORSIM_REDIS_ADDR"); addr != "" {
		return NewRedisCache(addr, cacheTTL)
	}
	return NewMemoryCache(cacheTTL)
}
