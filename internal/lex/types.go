// Package lex defines the typed wire schema of the Lex v1 code-hook contract:
// the dialog event the platform POSTs per turn, and the three dialog actions
// (ElicitSlot, Delegate, Close) a handler may answer with.
package lex

// Invocation sources. The platform sets DialogCodeHook while it is still
// collecting slots; anything else means it wants the final fulfillment.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Slots maps slot names to their values. A nil entry means the slot has not
// been filled (or was cleared for re-elicitation).
type Slots map[string]*string

// Get returns the value of the named slot, or nil when absent or unfilled.
func (s Slots) Get(name string) *string {
	if s == nil {
		return nil
	}
	return s[name]
}

// Clone returns a shallow copy so handlers can null out a slot without
// mutating the inbound request.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// CurrentIntent identifies the intent being processed and its slot state.
type CurrentIntent struct {
	Name  string `json:"name"`
	Slots Slots  `json:"slots"`
}

// IntentRequest is the dialog event the platform sends per turn. Session
// attributes are caller-owned and passed through responses unchanged.
type IntentRequest struct {
	CurrentIntent     CurrentIntent     `json:"currentIntent"`
	InvocationSource  string            `json:"invocationSource"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

// ContentTypePlainText is the only message content type this service emits.
const ContentTypePlainText = "PlainText"

// Message is a user-facing text payload attached to a dialog action.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a PlainText message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}
