package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_FINALIZED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used on both the publishing and
// consuming side of the bus.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// DocumentFinalized is emitted when a user confirms a document and the file
// has been exported. It feeds the audit log and the ops dashboard stream.
type DocumentFinalized struct {
	UserID        int64             `json:"user_id"`
	DocumentType  string            `json:"document_type"`
	Mode          string            `json:"mode"`
	FilledValues  map[string]string `json:"filled_values"`
	SkippedFields []string          `json:"skipped_fields"`
	FilePath      string            `json:"file_path"`
	FinalizedAt   time.Time         `json:"finalized_at"`
}

func (e *DocumentFinalized) EventType() string {
	return "DOCUMENT_FINALIZED"
}

func (e *DocumentFinalized) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":        e.UserID,
		"document_type":  e.DocumentType,
		"mode":           e.Mode,
		"filled_values":  e.FilledValues,
		"skipped_fields": e.SkippedFields,
		"file_path":      e.FilePath,
		"finalized_at":   e.FinalizedAt,
	}
}

func (e *DocumentFinalized) Timestamp() time.Time {
	return e.FinalizedAt
}
