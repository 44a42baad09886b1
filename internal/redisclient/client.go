package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client for a single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// NewClusterClient creates a new traced Redis client for a Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client}
}

// Get wraps Redis Get with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, finish := c.startSpan(ctx, "get", key)
	cmd := c.cmdable.Get(ctx, key)
	finish(cmd.Err())
	return cmd
}

// GetDel wraps Redis GetDel with tracing. Used for one-shot consumption of
// confirmation tokens: read and invalidate must be a single operation.
func (c *Client) GetDel(ctx context.Context, key string) *redis.StringCmd {
	ctx, finish := c.startSpan(ctx, "getdel", key)
	cmd := c.cmdable.GetDel(ctx, key)
	finish(cmd.Err())
	return cmd
}

// Set wraps Redis Set with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, finish := c.startSpan(ctx, "set", key,
		attribute.String("redis.expiration", expiration.String()))
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	finish(cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, finish := c.startSpan(ctx, "del", key,
		attribute.Int("redis.key_count", len(keys)))
	cmd := c.cmdable.Del(ctx, keys...)
	finish(cmd.Err())
	return cmd
}

// Exists wraps Redis Exists with tracing
func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, finish := c.startSpan(ctx, "exists", key,
		attribute.Int("redis.key_count", len(keys)))
	cmd := c.cmdable.Exists(ctx, keys...)
	finish(cmd.Err())
	return cmd
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, finish := c.startSpan(ctx, "ping", "")
	cmd := c.cmdable.Ping(ctx)
	finish(cmd.Err())
	return cmd
}

// startSpan opens a span for one Redis command and returns a closure that
// records the result and timing
func (c *Client) startSpan(ctx context.Context, operation, key string, extra ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	attrs := append([]attribute.KeyValue{
		attribute.String("redis.key", key),
		attribute.String("redis.operation", operation),
		attribute.String("redis.client", "crm-backend"),
	}, extra...)

	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+operation,
		trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("redis.duration_ms", duration.Milliseconds()),
			attribute.String("redis.duration", duration.String()),
		)
		if err != nil && err != redis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("redis.error", err.Error()))
		} else {
			span.SetStatus(codes.Ok, "success")
		}
		span.End()
	}
}
