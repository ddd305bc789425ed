package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	KindProjectSaved = "project.saved"
	KindLayerAdded   = "layer.added"
	KindLayerUpdated = "layer.updated"
	KindLayerDeleted = "layer.deleted"
	KindAuditChanged = "audit.changed"

	DefaultChannel = "layerstack:events"
)

// Event is a change notification sent after a mutation commits, or after
// an audit whose findings differ from the previous run.
type Event struct {
	Kind       string    `json:"kind"`
	LayerID    int       `json:"layer_id,omitempty"`
	RemovedIDs []int     `json:"removed_ids,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers change events. Implementations must not block the
// request for long and must never make a committed mutation fail.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// NopPublisher drops every event. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

// RedisPublisher sends events as JSON over Redis Pub/Sub. Publish only
// queues the event; a single background goroutine delivers the queue in
// order, so a slow or unreachable Redis never holds up a request.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	timeout time.Duration
	log     *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

const defaultQueueSize = 256

// NewRedisPublisher creates a RedisPublisher on channel (DefaultChannel
// when empty) and starts its delivery goroutine. Call Close to stop it.
func NewRedisPublisher(client *redis.Client, channel string, log *zap.Logger) *RedisPublisher {
	return newRedisPublisher(client, channel, log, defaultQueueSize)
}

func newRedisPublisher(client *redis.Client, channel string, log *zap.Logger, size int) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &RedisPublisher{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
		log:     log,
		queue:   make(chan Event, size),
		done:    make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *RedisPublisher) Channel() string { return p.channel }

// Publish queues ev for delivery. A full queue or a closed publisher
// drops the event with a warning.
func (p *RedisPublisher) Publish(_ context.Context, ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.log.Warn("event dropped", zap.String("kind", ev.Kind), zap.String("reason", "publisher closed"))
		return
	}
	select {
	case p.queue <- ev:
	default:
		p.log.Warn("event dropped", zap.String("kind", ev.Kind), zap.String("reason", "queue full"))
	}
}

// Close stops accepting events and waits until the queued ones are sent
// or ctx expires.
func (p *RedisPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *RedisPublisher) loop() {
	defer close(p.done)
	for ev := range p.queue {
		p.send(ev)
	}
}

func (p *RedisPublisher) send(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("event marshal failed", zap.String("kind", ev.Kind), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.log.Warn("event publish failed",
			zap.String("kind", ev.Kind),
			zap.String("channel", p.channel),
			zap.Error(fmt.Errorf("redis publish: %w", err)),
		)
		return
	}
	p.log.Debug("event published", zap.String("kind", ev.Kind), zap.String("channel", p.channel))
}
