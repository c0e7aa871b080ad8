package portfolio

import (
	"context"
	"fmt"
	"sort"

	"github.com/fintwin/lexhook/internal/lex"
	"github.com/fintwin/lexhook/internal/log"
)

// UnsupportedIntentError is returned when a request names an intent no
// handler is registered for. There is no structured recovery: the caller
// surfaces it to the platform as a request failure.
type UnsupportedIntentError struct {
	Intent string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("intent %q is not supported", e.Intent)
}

// Dispatcher routes dialog events to intent handlers by intent name. The
// registry is fixed at construction; there is no runtime registration.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher builds a dispatcher with all supported intents registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[string]Handler{
			IntentRecommendPortfolio: NewRecommendPortfolio(),
		},
	}
}

// Dispatch routes req to the handler registered for its intent name.
func (d *Dispatcher) Dispatch(ctx context.Context, req lex.IntentRequest) (lex.Response, error) {
	name := req.CurrentIntent.Name
	h, ok := d.handlers[name]
	if !ok {
		logger := log.WithComponentFromContext(ctx, "dispatch")
		logger.Warn().
			Str(log.FieldEvent, "dispatch.unsupported_intent").
			Str(log.FieldIntent, name).
			Msg("no handler registered for intent")
		return lex.Response{}, &UnsupportedIntentError{Intent: name}
	}
	return h.Handle(ctx, req), nil
}

// Intents lists the registered intent names, sorted.
func (d *Dispatcher) Intents() []string {
	out := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
