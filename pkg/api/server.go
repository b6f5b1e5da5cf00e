package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/oblique/pkg/api/handlers"
	"github.com/cbodonnell/oblique/pkg/api/middleware"
	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
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
	Port int
	TLS  *TLSConfig
	// Engine is used for requests that do not override gravity.
	Engine kinematic.Engine
	// Steps is the default number of trajectory sampling intervals.
	Steps int
}

// NewRouter returns the API routes. JSON responses are compressed; the
// websocket stream is mounted outside the compressing subrouter.
func NewRouter(engine kinematic.Engine, steps int) *mux.Router {
	if steps <= 0 {
		steps = kinematic.DefaultSteps
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Logging, middleware.CORS)

	router.HandleFunc("/v1/trajectory/stream", handlers.HandleTrajectoryStream(engine, steps)).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(middleware.Compress)
	v1.HandleFunc("/summary", handlers.HandleSummary(engine)).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/state", handlers.HandleState(engine)).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/trajectory", handlers.HandleTrajectory(engine, steps)).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return router
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts.Engine, opts.Steps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer and blocks until it is stopped
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
