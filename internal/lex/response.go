package lex

// Dialog action type discriminators.
const (
	ActionElicitSlot = "ElicitSlot"
	ActionDelegate   = "Delegate"
	ActionClose      = "Close"
)

// Fulfillment states for Close actions.
const (
	StateFulfilled = "Fulfilled"
	StateFailed    = "Failed"
)

// DialogAction carries the action type discriminator plus the fields of the
// matching variant; unused variant fields are omitted from the wire form.
type DialogAction struct {
	Type             string   `json:"type"`
	IntentName       string   `json:"intentName,omitempty"`
	Slots            Slots    `json:"slots,omitempty"`
	SlotToElicit     string   `json:"slotToElicit,omitempty"`
	FulfillmentState string   `json:"fulfillmentState,omitempty"`
	Message          *Message `json:"message,omitempty"`
}

// Response is the envelope returned to the platform for every turn.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ElicitSlot instructs the platform to re-prompt the user for one named slot,
// carrying forward all other slot values and session attributes unchanged.
func ElicitSlot(sessionAttrs map[string]string, intentName string, slots Slots, slotToElicit string, message *Message) Response {
	return Response{
		SessionAttributes: sessionAttrs,
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate instructs the platform to decide the next dialog step itself given
// the current slot state.
func Delegate(sessionAttrs map[string]string, slots Slots) Response {
	return Response{
		SessionAttributes: sessionAttrs,
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}

// Close terminates the dialog with a final state and a message payload.
func Close(sessionAttrs map[string]string, fulfillmentState string, message *Message) Response {
	return Response{
		SessionAttributes: sessionAttrs,
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: fulfillmentState,
			Message:          message,
		},
	}
}
