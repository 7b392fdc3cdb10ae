// Package messaging publishes entity mutation events to NATS Streaming so
// other systems can follow the directory. Publishing is best effort and is a
// no-op when no NATS URL is configured.
package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"
)

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

// EntityEvent describes one mutation of a directory entity.
type EntityEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Subject returns the NATS subject for the event, e.g. "venue.created".
func (e EntityEvent) Subject() string {
	return e.Entity + "." + e.Action
}

// Publisher publishes entity events. A Publisher with no connection drops
// events silently, which keeps the service independent of the broker.
type Publisher struct {
	conn stan.Conn
}

// NewPublisher connects to NATS Streaming when cfg.URL is set; otherwise it
// returns a disabled publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if cfg.URL == "" {
		slog.Info("NATS publishing disabled")
		return &Publisher{}, nil
	}

	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	slog.Info("Connected to NATS Streaming", "url", cfg.URL, "cluster", cfg.ClusterID, "client", cfg.ClientID)
	return &Publisher{conn: conn}, nil
}

// PublishEntityEvent sends the event to its subject. Failures are logged and
// swallowed: a broker outage never fails a user request.
func (p *Publisher) PublishEntityEvent(entity, action string, id int64) {
	if p == nil || p.conn == nil {
		return
	}

	event := EntityEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal entity event", "subject", event.Subject(), "error", err)
		return
	}

	if err := p.conn.Publish(event.Subject(), payload); err != nil {
		slog.Error("Failed to publish entity event", "subject", event.Subject(), "id", id, "error", err)
		return
	}

	slog.Debug("Published entity event", "subject", event.Subject(), "id", id)
}

func (p *Publisher) Close() error {
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
