package lex

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestElicitSlot(t *testing.T) {
	attrs := map[string]string{"userID": "abc"}
	slots := Slots{"age": nil, "riskLevel": strptr("low")}

	resp := ElicitSlot(attrs, "recommendPortfolio", slots, "age", PlainText("try again"))

	assert.Equal(t, ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, "recommendPortfolio", resp.DialogAction.IntentName)
	assert.Equal(t, "age", resp.DialogAction.SlotToElicit)
	assert.Equal(t, attrs, resp.SessionAttributes)
	require.NotNil(t, resp.DialogAction.Message)
	assert.Equal(t, ContentTypePlainText, resp.DialogAction.Message.ContentType)
	if diff := cmp.Diff(slots, resp.DialogAction.Slots); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestDelegate(t *testing.T) {
	slots := Slots{"age": strptr("30")}
	resp := Delegate(nil, slots)

	assert.Equal(t, ActionDelegate, resp.DialogAction.Type)
	assert.Empty(t, resp.DialogAction.IntentName)
	assert.Nil(t, resp.DialogAction.Message)
}

func TestClose(t *testing.T) {
	resp := Close(map[string]string{}, StateFulfilled, PlainText("done"))

	assert.Equal(t, ActionClose, resp.DialogAction.Type)
	assert.Equal(t, StateFulfilled, resp.DialogAction.FulfillmentState)
	assert.Nil(t, resp.DialogAction.Slots)
}

// The platform matches on the exact JSON key set, so variant fields that do
// not belong to an action must be absent, not null.
func TestResponseWireShape(t *testing.T) {
	resp := Delegate(map[string]string{"k": "v"}, Slots{"age": strptr("30")})
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "sessionAttributes")
	require.Contains(t, raw, "dialogAction")

	var action map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["dialogAction"], &action))
	assert.Contains(t, action, "type")
	assert.Contains(t, action, "slots")
	assert.NotContains(t, action, "intentName")
	assert.NotContains(t, action, "slotToElicit")
	assert.NotContains(t, action, "fulfillmentState")
	assert.NotContains(t, action, "message")
}

func TestSlotsCloneIsIndependent(t *testing.T) {
	orig := Slots{"age": strptr("70"), "riskLevel": strptr("low")}
	clone := orig.Clone()
	clone["age"] = nil

	require.NotNil(t, orig.Get("age"))
	assert.Equal(t, "70", *orig.Get("age"))
	assert.Nil(t, clone.Get("age"))
}

func TestSlotsGetMissing(t *testing.T) {
	var s Slots
	assert.Nil(t, s.Get("age"))
	assert.Nil(t, Slots{}.Get("age"))
}
