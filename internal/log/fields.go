package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Dialog fields
	FieldIntent           = "intent"
	FieldSlot             = "slot"
	FieldInvocationSource = "invocation_source"
	FieldDialogAction     = "dialog_action"
)
