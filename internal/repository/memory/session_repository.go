package memory

import (
	"context"
	"strconv"
	"time"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = &SessionRepository{}

// NewSessionRepository creates an in-process session store. Abandoned
// sessions expire after ttl; expired items are purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Get(_ context.Context, userID int64) (*entity.DialogSession, bool, error) {
	if x, found := r.cache.Get(key(userID)); found {
		return x.(*entity.DialogSession), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Save(_ context.Context, session *entity.DialogSession) error {
	session.UpdatedAt = time.Now()
	r.cache.Set(key(session.UserID), session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, userID int64) error {
	r.cache.Delete(key(userID))
	return nil
}

func key(userID int64) string {
	return "session:" + strconv.FormatInt(userID, 10)
}
