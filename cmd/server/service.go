package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/loader"
	"github.com/JaimeStill/tool-server/internal/server"
	"github.com/JaimeStill/tool-server/pkg/logging"
	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger *slog.Logger
	server server.System
}

// NewService creates and initializes the service: it builds the host router,
// runs tool registration against the configured tools root, and wires the
// HTTP server.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logging.New(&cfg.Logging)

	host := chi.NewRouter()

	ld := loader.New(toolkit.Default, cfg.Tools.MountPrefix, logger)
	report, err := ld.Load(host, os.DirFS(cfg.Tools.Root))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("tool registration failed: %w", err)
	}

	logger.Info("tool registration complete",
		"mounted", len(report.Mounted()),
		"failed", len(report.Failed()),
	)

	registerRoutes(host, report)

	middlewareSys := buildMiddleware(logger, cfg)
	handler := middlewareSys.Apply(host)

	serverSys := server.New(&cfg.Server, handler, logger)

	return &Service{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context
// deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
