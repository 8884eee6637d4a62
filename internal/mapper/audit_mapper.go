package mapper

import (
	"encoding/json"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/model"

	"gorm.io/datatypes"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToModel(e *entity.DocumentAudit) *model.DocumentAudit {
	filled, _ := json.Marshal(e.FilledValues)
	skipped, _ := json.Marshal(e.SkippedFields)

	return &model.DocumentAudit{
		Id:            e.Id,
		UserID:        e.UserID,
		DocumentType:  e.DocumentType,
		Mode:          e.Mode,
		FilledValues:  datatypes.JSON(filled),
		SkippedFields: datatypes.JSON(skipped),
		FilePath:      e.FilePath,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *AuditMapper) ToEntity(mod *model.DocumentAudit) *entity.DocumentAudit {
	e := &entity.DocumentAudit{
		Id:           mod.Id,
		UserID:       mod.UserID,
		DocumentType: mod.DocumentType,
		Mode:         mod.Mode,
		FilePath:     mod.FilePath,
		CreatedAt:    mod.CreatedAt,
	}
	// Malformed JSON columns degrade to empty values rather than failing the read.
	_ = json.Unmarshal(mod.FilledValues, &e.FilledValues)
	_ = json.Unmarshal(mod.SkippedFields, &e.SkippedFields)
	return e
}
