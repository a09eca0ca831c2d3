package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/asteroids/pkg/api/handlers"
	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/repositories"
	"github.com/cbodonnell/asteroids/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	Repository   repositories.Repository
	StateManager state.StateManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository, opts.StateManager),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter routes the read-only endpoints of the arena.
func NewRouter(repository repositories.Repository, stateManager state.StateManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.HandleFunc("/state", handlers.HandleGetState(stateManager)).Methods(http.MethodGet)
	r.HandleFunc("/runs", handlers.HandleListTopRuns(repository)).Methods(http.MethodGet)
	r.HandleFunc("/runs/{runID}", handlers.HandleGetRun(repository)).Methods(http.MethodGet)
	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
