// Package redis publishes reported transfers to a Redis stream.
package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/redis/go-redis/v9"
)

// DefaultStream is the stream transfers are appended to when none is set.
const DefaultStream = "transferwatch:transfers"

// streamAdder is the part of the Redis client the sink uses.
type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Sink appends every transfer to a Redis stream as a flat entry with hash,
// from, to and value fields.
type Sink struct {
	conn   streamAdder
	closer func() error
	stream string
}

// Compile-time check to ensure *Sink implements transferwatch.Sink.
var _ transferwatch.Sink = (*Sink)(nil)

// Emit implements transferwatch.Sink.
func (s *Sink) Emit(ctx context.Context, transfer transferwatch.Transfer) error {
	err := s.conn.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"hash":  transfer.Hash,
			"from":  transfer.From,
			"to":    transfer.To,
			"value": transfer.Value.String(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis sink: xadd %s: %w", s.stream, err)
	}

	return nil
}

// Close releases the underlying connection.
func (s *Sink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// NewSink connects to the Redis server at addr and returns a Sink appending
// to stream. The connection is checked with PING before returning.
func NewSink(ctx context.Context, addr, username, password string, db int, stream string) (*Sink, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newSink(conn, conn.Close, stream), nil
}

func newSink(conn streamAdder, closer func() error, stream string) *Sink {
	if stream == "" {
		stream = DefaultStream
	}

	return &Sink{
		conn:   conn,
		closer: closer,
		stream: stream,
	}
}
