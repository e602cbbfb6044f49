package main

import (
	"log/slog"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack. Request IDs
// and logging run outermost; slash normalization must run before routing so
// "POST /tools/math/add/" reaches the mounted handler.
func buildMiddleware(logger *slog.Logger, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(middleware.Recover(logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.StripSlash())
	middlewareSys.Use(middleware.MaxBytes(cfg.Server.MaxBodySizeBytes()))
	return middlewareSys
}
