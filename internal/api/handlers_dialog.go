package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fintwin/lexhook/internal/lex"
	"github.com/fintwin/lexhook/internal/log"
	"github.com/fintwin/lexhook/internal/metrics"
	"github.com/fintwin/lexhook/internal/portfolio"
)

// maxDialogBodyBytes bounds inbound event size; platform events are a few KB.
const maxDialogBodyBytes = 1 << 20

// handleDialog is the code-hook entry point. It decodes one dialog event,
// dispatches it by intent name, and writes back the resulting dialog action.
func (s *Server) handleDialog(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	start := time.Now()

	var req lex.IntentRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxDialogBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).
			Str(log.FieldEvent, "dialog.decode_failed").
			Msg("rejecting malformed dialog event")
		metrics.RecordDialogFailure("decode_error")
		writeBadRequest(w, errors.New("malformed dialog event"))
		return
	}

	resp, err := s.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		var unsupported *portfolio.UnsupportedIntentError
		if errors.As(err, &unsupported) {
			metrics.RecordDialogFailure("unsupported_intent")
			writeUnprocessable(w, err)
			return
		}
		logger.Error().Err(err).
			Str(log.FieldEvent, "dialog.dispatch_failed").
			Str(log.FieldIntent, req.CurrentIntent.Name).
			Msg("dispatch failed")
		writeInternalError(w)
		return
	}

	metrics.RecordDialogRequest(req.CurrentIntent.Name, resp.DialogAction.Type, time.Since(start))
	logger.Debug().
		Str(log.FieldEvent, "dialog.handled").
		Str(log.FieldIntent, req.CurrentIntent.Name).
		Str(log.FieldInvocationSource, req.InvocationSource).
		Str(log.FieldDialogAction, resp.DialogAction.Type).
		Msg("dialog event handled")

	writeJSON(w, http.StatusOK, resp)
}
