package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DocumentAudit struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        int64          `gorm:"index;not null"`
	DocumentType  string         `gorm:"size:64"`
	Mode          string         `gorm:"size:32"`
	FilledValues  datatypes.JSON `gorm:"type:jsonb"`
	SkippedFields datatypes.JSON `gorm:"type:jsonb"`
	FilePath      string
	CreatedAt     time.Time
}

func (DocumentAudit) TableName() string {
	return "document_audits"
}
