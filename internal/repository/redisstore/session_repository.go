package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps dialog sessions in Redis so they survive process
// restarts. Values are JSON, keyed by Telegram user id, with a sliding TTL.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.SessionRepository = &SessionRepository{}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func key(userID int64) string {
	return "readydoc:session:" + strconv.FormatInt(userID, 10)
}

func (r *SessionRepository) Get(ctx context.Context, userID int64) (*entity.DialogSession, bool, error) {
	data, err := r.rdb.Get(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get session: %w", err)
	}

	var session entity.DialogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.DialogSession) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, key(session.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
