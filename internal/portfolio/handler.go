package portfolio

import (
	"context"
	"fmt"

	"github.com/fintwin/lexhook/internal/lex"
	"github.com/fintwin/lexhook/internal/log"
	"github.com/fintwin/lexhook/internal/metrics"
)

// IntentRecommendPortfolio is the intent name this package handles.
const IntentRecommendPortfolio = "recommendPortfolio"

// Handler processes one dialog turn for a single intent.
type Handler interface {
	Handle(ctx context.Context, req lex.IntentRequest) lex.Response
}

// RecommendPortfolio performs dialog management and fulfillment for the
// portfolio recommendation intent.
type RecommendPortfolio struct{}

// NewRecommendPortfolio returns the handler for the recommendPortfolio intent.
func NewRecommendPortfolio() *RecommendPortfolio {
	return &RecommendPortfolio{}
}

// Handle routes a turn by invocation source: while the platform is collecting
// slots (DialogCodeHook) it validates and either re-prompts or delegates; any
// other source means the platform wants the final recommendation.
func (h *RecommendPortfolio) Handle(ctx context.Context, req lex.IntentRequest) lex.Response {
	logger := log.WithComponentFromContext(ctx, "portfolio")
	slots := req.CurrentIntent.Slots

	if req.InvocationSource == lex.SourceDialogCodeHook {
		result := Validate(
			slots.Get(SlotAge),
			slots.Get(SlotInvestmentAmount),
			slots.Get(SlotRiskLevel),
		)

		if !result.Valid {
			logger.Info().
				Str(log.FieldEvent, "dialog.validate_failed").
				Str(log.FieldIntent, req.CurrentIntent.Name).
				Str(log.FieldSlot, result.ViolatedSlot).
				Msg("slot validation failed, re-prompting")
			metrics.RecordValidationFailure(result.ViolatedSlot)

			// Clear the offending slot so the platform collects it again.
			cleaned := slots.Clone()
			cleaned[result.ViolatedSlot] = nil

			return lex.ElicitSlot(
				req.SessionAttributes,
				req.CurrentIntent.Name,
				cleaned,
				result.ViolatedSlot,
				result.Message,
			)
		}

		logger.Debug().
			Str(log.FieldEvent, "dialog.delegate").
			Str(log.FieldIntent, req.CurrentIntent.Name).
			Msg("all filled slots valid, delegating")

		return lex.Delegate(req.SessionAttributes, slots)
	}

	// Fulfillment phase. The risk level was validated on a prior dialog-hook
	// turn; junk values fall through to the default allocation.
	var riskLevel string
	if v := slots.Get(SlotRiskLevel); v != nil {
		riskLevel = *v
	}
	advice := Advice(riskLevel)
	metrics.RecordAdviceServed(riskLevel)

	logger.Info().
		Str(log.FieldEvent, "dialog.fulfilled").
		Str(log.FieldIntent, req.CurrentIntent.Name).
		Str("risk_level", riskLevel).
		Msg("returning portfolio recommendation")

	return lex.Close(
		req.SessionAttributes,
		lex.StateFulfilled,
		lex.PlainText(fmt.Sprintf("Based on your risk level, it is recommended that your portfolio should be %s", advice)),
	)
}
