// Package api provides the HTTP surface of the dialog webhook: the code-hook
// endpoint the conversational platform calls, plus health probes, metrics,
// and a status endpoint for operators.
package api

import (
	"time"

	"github.com/fintwin/lexhook/internal/config"
	"github.com/fintwin/lexhook/internal/health"
	"github.com/fintwin/lexhook/internal/portfolio"
)

// Server holds the wired dependencies of the HTTP API.
type Server struct {
	cfg        config.AppConfig
	dispatcher *portfolio.Dispatcher
	healthMgr  *health.Manager
	startTime  time.Time
}

// New constructs a Server with its dispatcher and health manager wired.
func New(cfg config.AppConfig) *Server {
	s := &Server{
		cfg:        cfg,
		dispatcher: portfolio.NewDispatcher(),
		healthMgr:  health.NewManager(cfg.Version),
		startTime:  time.Now(),
	}
	s.healthMgr.RegisterChecker(health.NewStaticChecker("dispatcher", health.CheckResult{
		Status:  health.StatusHealthy,
		Message: "intent registry initialized",
	}))
	return s
}
