package contract

import (
	"context"

	"readydoc-bot/internal/entity"
)

type AuditRepository interface {
	Create(ctx context.Context, audit *entity.DocumentAudit) error
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.DocumentAudit, error)
	Count(ctx context.Context) (int64, error)
}
