package constant

// Dialog steps. A session is always parked on exactly one of these between
// inbound messages; Generating and Reviewing are transient and only ever
// observed through the ops event stream.
const (
	StepAwaitingDescription   = "awaiting_description"
	StepAwaitingClarification = "awaiting_clarification"
	StepGenerating            = "generating"
	StepReviewing             = "reviewing"
	StepFillingVariables      = "filling_variables"
	StepConfirming            = "confirming"
	StepAwaitingAmendment     = "awaiting_amendment"
)

// Generation modes recorded on the audit row.
const (
	ModeAuto      = "auto"
	ModeCached    = "cached"
	ModeClarified = "clarified"
)

// Keyboards the dialog service can request on a reply. The Telegram layer
// maps these to concrete reply markups.
const (
	KeyboardNone    = ""
	KeyboardMain    = "main"
	KeyboardSkip    = "skip"
	KeyboardConfirm = "confirm"
	KeyboardRemove  = "remove"
)
