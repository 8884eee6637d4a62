package memory

import (
	"context"
	"testing"
	"time"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	_, found, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)

	session := &entity.DialogSession{
		UserID:      42,
		ChatID:      100,
		Step:        constant.StepAwaitingDescription,
		Description: "Договор аренды",
		Filled:      map[string]string{},
	}
	require.NoError(t, repo.Save(ctx, session))
	assert.False(t, session.UpdatedAt.IsZero())

	got, found, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Договор аренды", got.Description)
	assert.Equal(t, constant.StepAwaitingDescription, got.Step)
}

func TestSessionOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	require.NoError(t, repo.Save(ctx, &entity.DialogSession{UserID: 7, Step: constant.StepAwaitingDescription}))
	require.NoError(t, repo.Save(ctx, &entity.DialogSession{UserID: 7, Step: constant.StepConfirming}))

	got, found, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constant.StepConfirming, got.Step)
}

func TestSessionDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	require.NoError(t, repo.Save(ctx, &entity.DialogSession{UserID: 9}))
	require.NoError(t, repo.Delete(ctx, 9))

	_, found, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing session is not an error.
	require.NoError(t, repo.Delete(ctx, 9))
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(10 * time.Millisecond)

	require.NoError(t, repo.Save(ctx, &entity.DialogSession{UserID: 5}))
	time.Sleep(30 * time.Millisecond)

	_, found, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, found)
}
