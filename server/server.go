// Package server exposes proposal generation over HTTP.
//
// Routes:
//
//	GET  /                        the input form
//	POST /generate_proposal       JSON submission -> PDF attachment
//	POST /generate_proposal_word  JSON submission -> DOCX attachment
//	GET  /healthcheck             liveness
//
// Failures answer with status 500 (400 for an unreadable body) and a JSON
// body {"error": "<message>"}.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/internal/logger"
)

// Config wires the server's collaborators.
type Config struct {
	Generator   *proposal.Generator
	Logger      *logger.Logger
	FormPath    string   // HTML form served at /
	CORSOrigins []string // empty or "*" allows any origin
}

type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

// New builds the router.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Generator == nil {
		cfg.Generator = proposal.New()
	}
	h := &handler{gen: cfg.Generator, log: cfg.Logger, formPath: cfg.FormPath}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(CORS(cfg.CORSOrigins))

	r.GET("/", h.Index)
	r.GET("/healthcheck", h.HealthCheck)
	r.POST("/generate_proposal", h.GenerateProposal)
	r.POST("/generate_proposal_word", h.GenerateProposalWord)

	return &Server{Engine: r, log: cfg.Logger}
}

// Run serves on address until ctx is canceled, then shuts down, giving
// in-flight requests up to ten seconds to finish.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
