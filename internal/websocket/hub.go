package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"readydoc-bot/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// opsChannel is the Redis pub/sub channel used to fan events out to other
// instances of the bot.
const opsChannel = "readydoc:ops_events"

// OpsEvent is one entry on the admin dashboard stream.
type OpsEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Hub keeps the set of connected dashboard viewers and broadcasts document
// lifecycle events to all of them. The stream is admin-only, so there is no
// per-user routing.
type Hub struct {
	// Registered viewers, keyed by connection id.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Optional.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Viewer connected", map[string]interface{}{"conn_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Viewer disconnected", map[string]interface{}{"conn_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes an event to every connected viewer. With Redis configured
// the event goes through the cluster channel so every instance (this one
// included) delivers it exactly once.
func (h *Hub) Broadcast(event OpsEvent) {
	data, _ := json.Marshal(event)

	if h.rdb != nil {
		h.rdb.Publish(context.Background(), opsChannel, data)
		return
	}
	h.sendLocal(data)
}

func (h *Hub) sendLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Viewer send buffer full, dropping connection", map[string]interface{}{"conn_id": client.ID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, opsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event OpsEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.sendLocal([]byte(msg.Payload))
	}
}
