package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/entity"
	"readydoc-bot/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepo struct {
	mu   sync.Mutex
	rows []*entity.DocumentAudit
}

func (r *fakeAuditRepo) Create(_ context.Context, audit *entity.DocumentAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, audit)
	return nil
}

func (r *fakeAuditRepo) FindRecent(_ context.Context, limit, offset int) ([]*entity.DocumentAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[offset:end], nil
}

func (r *fakeAuditRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakeAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func TestAuditConsumesFinalizedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakeAuditRepo{}

	audits := NewAuditService(pubSub, repo, nopLogger{})
	require.NoError(t, audits.Consume(ctx))

	publisher := NewPublisherService(pubSub, nil, nopLogger{})
	err := publisher.PublishDocumentFinalized(ctx, &events.DocumentFinalized{
		UserID:        42,
		DocumentType:  "Договор аренды",
		Mode:          constant.ModeAuto,
		FilledValues:  map[string]string{"СУММА АРЕНДЫ": "150000"},
		SkippedFields: []string{"ИНН АРЕНДОДАТЕЛЯ"},
		FilePath:      "/tmp/contract_42.docx",
		FinalizedAt:   time.Now(),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return repo.count() == 1
	}, time.Second, 10*time.Millisecond)

	rows, total, err := audits.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].UserID)
	assert.Equal(t, "Договор аренды", rows[0].DocumentType)
	assert.Equal(t, constant.ModeAuto, rows[0].Mode)
	assert.Equal(t, "150000", rows[0].FilledValues["СУММА АРЕНДЫ"])
	assert.Equal(t, []string{"ИНН АРЕНДОДАТЕЛЯ"}, rows[0].SkippedFields)
}
