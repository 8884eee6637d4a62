package constant

// Internal event bus topic (watermill gochannel).
const TopicDocumentFinalized = "DOCUMENT_FINALIZED"

// NATS subjects for cross-process lifecycle events.
const (
	SubjectDocumentFinalized = "DOCUMENT_FINALIZED"
	SubjectGenerationStarted = "GENERATION_STARTED"
	SubjectGenerationFailed  = "GENERATION_FAILED"
	SubjectSessionCancelled  = "SESSION_CANCELLED"
)
