// Package kafka publishes reported transfers to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	// DefaultTopic is the topic transfers are produced to when none is set.
	DefaultTopic = "transferwatch.transfers"

	// transferType tags the envelope of every produced transfer.
	transferType = "transfer"
)

// ErrClosed is returned by Emit once Close has been called.
var ErrClosed = errors.New("kafka sink: closed")

// Envelope wraps every message value.
type Envelope struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	TS   int64           `json:"ts"` // unix milli
	Data json.RawMessage `json:"data"`
}

// Sink produces every transfer as a JSON envelope keyed by transaction hash.
type Sink struct {
	topic string
	p     sarama.SyncProducer
	now   func() time.Time
	newID func() string

	mu     sync.RWMutex
	closed bool
}

// Compile-time check to ensure *Sink implements transferwatch.Sink.
var _ transferwatch.Sink = (*Sink)(nil)

// Emit implements transferwatch.Sink. The SyncProducer does not take a
// context, so ctx is not observed once the message is handed over.
func (s *Sink) Emit(_ context.Context, transfer transferwatch.Transfer) error {
	data, err := json.Marshal(transfer)
	if err != nil {
		return err
	}

	b, err := json.Marshal(Envelope{
		ID:   s.newID(),
		Type: transferType,
		TS:   s.now().UnixMilli(),
		Data: data,
	})
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}

	_, _, err = s.p.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(transfer.Hash),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		return fmt.Errorf("kafka sink: produce to %s: %w", s.topic, err)
	}

	return nil
}

// Close waits for in-flight emits, then flushes and closes the producer.
// Later calls are no-ops.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.p == nil {
		s.closed = true
		return nil
	}

	s.closed = true
	return s.p.Close()
}

// NewSink connects a synchronous producer to brokers. A nil cfg uses the
// sarama defaults with acknowledgements from all in-sync replicas.
func NewSink(brokers []string, topic string, cfg *sarama.Config) (*Sink, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
		cfg.Producer.RequiredAcks = sarama.WaitForAll
	}
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return newSink(p, topic), nil
}

func newSink(p sarama.SyncProducer, topic string) *Sink {
	if topic == "" {
		topic = DefaultTopic
	}

	return &Sink{
		topic: topic,
		p:     p,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
