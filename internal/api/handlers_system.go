package api

import (
	"net/http"
	"time"
)

// statusResponse is the operator-facing service summary.
type statusResponse struct {
	Service       string   `json:"service"`
	Version       string   `json:"version"`
	UptimeSeconds int64    `json:"uptimeSeconds"`
	Intents       []string `json:"intents"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.healthMgr.ServeHealth(w, r)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.healthMgr.ServeReady(w, r)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Service:       s.cfg.LogService,
		Version:       s.cfg.Version,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Intents:       s.dispatcher.Intents(),
	})
}
