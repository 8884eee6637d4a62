package service

import (
	"context"

	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/internal/websocket"
	"readydoc-bot/pkg/events"
	pkgNats "readydoc-bot/pkg/nats"
)

// OpsDelivery pushes real-time updates to the admin dashboard. Implemented
// by the websocket Hub.
type OpsDelivery interface {
	Broadcast(event websocket.OpsEvent)
}

// NotificationService relays document lifecycle events from NATS onto the
// dashboard stream.
type NotificationService struct {
	subscriber *pkgNats.Subscriber
	delivery   OpsDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pkgNats.Subscriber, delivery OpsDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("documents.>", "ops-dashboard-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start ops subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Ops stream started, listening to documents.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", "Relaying event to dashboard", map[string]interface{}{"type": event.EventType()})

	if s.delivery != nil {
		s.delivery.Broadcast(websocket.OpsEvent{
			Type:       event.EventType(),
			Data:       event.Payload(),
			OccurredAt: event.Timestamp(),
		})
	}
	return nil
}
