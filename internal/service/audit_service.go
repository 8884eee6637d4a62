package service

import (
	"context"
	"encoding/json"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/internal/repository/contract"
	"readydoc-bot/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IAuditService records finalized documents off the in-process bus and
// serves the resulting trail to the admin API.
type IAuditService interface {
	Consume(ctx context.Context) error
	List(ctx context.Context, limit, offset int) ([]*entity.DocumentAudit, int64, error)
}

type auditService struct {
	pubSub *gochannel.GoChannel
	repo   contract.AuditRepository
	logger logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, repo contract.AuditRepository, log logger.ILogger) IAuditService {
	return &auditService{
		pubSub: pubSub,
		repo:   repo,
		logger: log,
	}
}

func (as *auditService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, constant.TopicDocumentFinalized)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (as *auditService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.DocumentFinalized
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		as.logger.Error("AuditService", "Failed to unmarshal finalized event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads would only retry forever
		return
	}

	audit := &entity.DocumentAudit{
		Id:            uuid.New(),
		UserID:        payload.UserID,
		DocumentType:  payload.DocumentType,
		Mode:          payload.Mode,
		FilledValues:  payload.FilledValues,
		SkippedFields: payload.SkippedFields,
		FilePath:      payload.FilePath,
		CreatedAt:     payload.FinalizedAt,
	}

	if err := as.repo.Create(ctx, audit); err != nil {
		as.logger.Error("AuditService", "Failed to persist audit row", map[string]interface{}{
			"user_id": payload.UserID, "error": err.Error(),
		})
		msg.Nack()
		return
	}

	as.logger.Info("AuditService", "Audit row recorded", map[string]interface{}{
		"user_id": payload.UserID, "doc_type": payload.DocumentType,
	})
	msg.Ack()
}

func (as *auditService) List(ctx context.Context, limit, offset int) ([]*entity.DocumentAudit, int64, error) {
	audits, err := as.repo.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := as.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return audits, total, nil
}
