package contract

import (
	"context"

	"readydoc-bot/internal/entity"
)

// SessionRepository stores per-user dialog state. Backends are
// interchangeable (in-process cache or Redis); last write wins, which is
// acceptable because a user drives exactly one chat.
type SessionRepository interface {
	Get(ctx context.Context, userID int64) (*entity.DialogSession, bool, error)
	Save(ctx context.Context, session *entity.DialogSession) error
	Delete(ctx context.Context, userID int64) error
}
