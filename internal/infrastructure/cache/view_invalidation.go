package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/acme/dashboard-gateway/internal/application/dashboard"
)

// DefaultChannel is the Pub/Sub channel rendering caches subscribe to
const DefaultChannel = "dashboard:view-invalidation"

const connectTimeout = 5 * time.Second

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// InvalidationMessage is the payload published for every stale view path
type InvalidationMessage struct {
	Path          string    `json:"path"`
	InvalidatedAt time.Time `json:"invalidated_at"`
}

// RedisViewInvalidator broadcasts stale view paths over Redis Pub/Sub so
// every rendering cache holding the view drops it
type RedisViewInvalidator struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// RedisViewInvalidatorOption is a functional option for configuring the invalidator
type RedisViewInvalidatorOption func(*RedisViewInvalidator)

// WithChannel sets the Pub/Sub channel name
func WithChannel(channel string) RedisViewInvalidatorOption {
	return func(i *RedisViewInvalidator) {
		i.channel = channel
	}
}

// WithLogger sets the logger for the invalidator
func WithLogger(logger *zap.Logger) RedisViewInvalidatorOption {
	return func(i *RedisViewInvalidator) {
		i.logger = logger
	}
}

// NewRedisViewInvalidator creates a Redis Pub/Sub view invalidator
func NewRedisViewInvalidator(cfg RedisConfig, opts ...RedisViewInvalidatorOption) (*RedisViewInvalidator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	invalidator := &RedisViewInvalidator{
		client:  client,
		channel: DefaultChannel,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(invalidator)
	}
	return invalidator, nil
}

// Invalidate publishes the stale view path
func (i *RedisViewInvalidator) Invalidate(ctx context.Context, path string) error {
	msg := InvalidationMessage{Path: path, InvalidatedAt: time.Now()}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal invalidation message: %w", err)
	}

	if err := i.client.Publish(ctx, i.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish invalidation: %w", err)
	}

	i.logger.Debug("View invalidated",
		zap.String("path", path),
		zap.String("channel", i.channel))
	return nil
}

// Close releases the Redis connection
func (i *RedisViewInvalidator) Close() error {
	return i.client.Close()
}

// NoopInvalidator discards invalidations; used when no rendering cache is
// deployed and in tests
type NoopInvalidator struct{}

// Invalidate does nothing
func (NoopInvalidator) Invalidate(context.Context, string) error {
	return nil
}

var (
	_ dashboard.ViewInvalidator = (*RedisViewInvalidator)(nil)
	_ dashboard.ViewInvalidator = NoopInvalidator{}
)
