// Package server exposes contract generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hansollabs/clausecraft/internal/engine"
	"github.com/hansollabs/clausecraft/internal/model"
)

// TemplateStore is what the template endpoints need from storage.
type TemplateStore interface {
	engine.TemplateStore
	SaveTemplate(ctx context.Context, template *model.Template) error
}

// ContractStore is what the contract endpoints need from storage.
type ContractStore interface {
	engine.ContractStore
	GetContract(ctx context.Context, id string) (*model.Contract, error)
}

// QuoteStore is what the quote endpoints need from storage.
type QuoteStore interface {
	SaveQuote(ctx context.Context, quote *model.Quote) error
	GetQuote(ctx context.Context, id string) (*model.Quote, error)
}

// ContractGenerator runs one generation; satisfied by *engine.Engine.
type ContractGenerator interface {
	Generate(ctx context.Context, quote *model.Quote, opts engine.Options) (*model.Contract, error)
}

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server wires the engine and stores behind a gin router.
type Server struct {
	engine    ContractGenerator
	templates TemplateStore
	contracts ContractStore
	quotes    QuoteStore
	logger    *slog.Logger
	http      *http.Server
	cfg       Config
}

// New creates the server. gin release mode is assumed; callers set debug
// mode themselves if they want request dumps.
func New(cfg Config, gen ContractGenerator, templates TemplateStore, contracts ContractStore, quotes QuoteStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		engine:    gen,
		templates: templates,
		contracts: contracts,
		quotes:    quotes,
		logger:    logger,
		cfg:       cfg,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with middleware and routes. Exposed for
// httptest in handler tests.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(s.logger), Recovery(s.logger))

	router.GET("/healthz", s.handleHealth)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/contracts/generate", s.handleGenerate)
		v1.GET("/contracts/:id", s.handleGetContract)
		v1.GET("/templates", s.handleListTemplates)
		v1.POST("/templates", s.handleSaveTemplate)
		v1.POST("/quotes", s.handleSaveQuote)
	}
	return router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}
