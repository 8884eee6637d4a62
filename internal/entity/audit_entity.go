package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentAudit is an append-only bookkeeping row written after every
// finalized document. It is never read back by the bot itself, only by the
// ops dashboard.
type DocumentAudit struct {
	Id            uuid.UUID         `json:"id"`
	UserID        int64             `json:"user_id"`
	DocumentType  string            `json:"document_type"`
	Mode          string            `json:"mode"`
	FilledValues  map[string]string `json:"filled_values"`
	SkippedFields []string          `json:"skipped_fields"`
	FilePath      string            `json:"file_path"`
	CreatedAt     time.Time         `json:"created_at"`
}
