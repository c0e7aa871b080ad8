package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintwin/lexhook/internal/lex"
)

func TestDispatch_KnownIntent(t *testing.T) {
	d := NewDispatcher()
	req := dialogRequest(lex.SourceDialogCodeHook, lex.Slots{
		SlotAge: strptr("30"),
	})

	resp, err := d.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, lex.ActionDelegate, resp.DialogAction.Type)
}

func TestDispatch_UnknownIntent(t *testing.T) {
	d := NewDispatcher()
	req := lex.IntentRequest{
		CurrentIntent:    lex.CurrentIntent{Name: "unknownIntent"},
		InvocationSource: lex.SourceDialogCodeHook,
	}

	_, err := d.Dispatch(context.Background(), req)
	require.Error(t, err)

	var unsupported *UnsupportedIntentError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "unknownIntent", unsupported.Intent)
	assert.Contains(t, err.Error(), "unknownIntent")
}

func TestIntents(t *testing.T) {
	d := NewDispatcher()
	assert.Equal(t, []string{IntentRecommendPortfolio}, d.Intents())
}
