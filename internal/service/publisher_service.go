package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/pkg/events"
	pkgNats "readydoc-bot/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService fans finalized-document events out to the in-process bus
// (audit consumer) and, when configured, to NATS for external subscribers.
type IPublisherService interface {
	PublishDocumentFinalized(ctx context.Context, event *events.DocumentFinalized) error

	// PublishLifecycle pushes a fire-and-forget status event (generation
	// started/failed, session cancelled) onto the ops stream.
	PublishLifecycle(ctx context.Context, eventType string, data map[string]interface{})
}

type publisherService struct {
	pubSub  *gochannel.GoChannel
	natsPub *pkgNats.Publisher
	logger  logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, natsPub *pkgNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:  pubSub,
		natsPub: natsPub,
		logger:  log,
	}
}

func (ps *publisherService) PublishDocumentFinalized(ctx context.Context, event *events.DocumentFinalized) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal finalized event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(constant.TopicDocumentFinalized, msg); err != nil {
		return fmt.Errorf("publish finalized event: %w", err)
	}

	// NATS delivery is best-effort: the audit trail only depends on the
	// in-process bus.
	if ps.natsPub != nil {
		if err := ps.natsPub.Publish(ctx, event); err != nil {
			ps.logger.Warn("PublisherService", "NATS publish failed", map[string]interface{}{
				"subject": event.EventType(), "error": err.Error(),
			})
		}
	}

	return nil
}

func (ps *publisherService) PublishLifecycle(ctx context.Context, eventType string, data map[string]interface{}) {
	if ps.natsPub == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := ps.natsPub.Publish(ctx, event); err != nil {
		ps.logger.Warn("PublisherService", "NATS lifecycle publish failed", map[string]interface{}{
			"subject": eventType, "error": err.Error(),
		})
	}
}
