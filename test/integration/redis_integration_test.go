package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/repository/redisstore"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionStore(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		t.Skipf("Skipping integration test: Redis not reachable: %v", err)
	}

	repo := redisstore.NewSessionRepository(rdb, time.Minute)

	const userID = int64(987654)
	defer repo.Delete(ctx, userID)

	_, found, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)

	session := &entity.DialogSession{
		UserID:       userID,
		ChatID:       100,
		Step:         constant.StepFillingVariables,
		Description:  "Договор аренды офиса",
		Placeholders: []string{"СУММА АРЕНДЫ"},
		Filled:       map[string]string{},
	}
	require.NoError(t, repo.Save(ctx, session))

	got, found, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constant.StepFillingVariables, got.Step)
	assert.Equal(t, []string{"СУММА АРЕНДЫ"}, got.Placeholders)

	require.NoError(t, repo.Delete(ctx, userID))
	_, found, err = repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)
}
