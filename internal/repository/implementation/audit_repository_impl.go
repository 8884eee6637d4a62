package implementation

import (
	"context"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/mapper"
	"readydoc-bot/internal/model"
	"readydoc-bot/internal/repository/contract"

	"gorm.io/gorm"
)

type AuditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditMapper
}

func NewAuditRepository(db *gorm.DB) contract.AuditRepository {
	return &AuditRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditMapper(),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, audit *entity.DocumentAudit) error {
	m := r.mapper.ToModel(audit)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*audit = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditRepositoryImpl) FindRecent(ctx context.Context, limit, offset int) ([]*entity.DocumentAudit, error) {
	var models []*model.DocumentAudit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	audits := make([]*entity.DocumentAudit, len(models))
	for i, m := range models {
		audits[i] = r.mapper.ToEntity(m)
	}
	return audits, nil
}

func (r *AuditRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DocumentAudit{}).Count(&count).Error
	return count, err
}
