package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/platform/config"
)

// KafkaSink mirrors persisted failed attempts onto a Kafka topic for the
// venue's security/reporting pipeline. The mirror is best-effort: produce
// errors are logged and dropped, and the durable store written by the worker
// remains the source of truth.
type KafkaSink struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// attemptPayload is the JSON structure published to Kafka.
type attemptPayload struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	SessionID  string `json:"session_id,omitempty"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
	Channel    string `json:"channel"`
	OperatorID string `json:"operator_id"`
	Terminal   string `json:"terminal,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewKafkaSink connects to the configured brokers and ensures the topic
// exists. Returns nil if no brokers are configured (mirror disabled).
func NewKafkaSink(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaSink, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProduceRequestTimeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := ensureTopic(client, cfg.Topic); err != nil {
		client.Close()
		return nil, err
	}

	return &KafkaSink{client: client, topic: cfg.Topic, logger: logger}, nil
}

// ensureTopic creates the mirror topic if it does not exist yet.
func ensureTopic(client *kgo.Client, topic string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, -1, -1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, resp.Err)
	}
	return nil
}

// Publish produces the attempt asynchronously. Keyed by candidate code so
// repeated probing of one code lands in one partition, in order.
func (s *KafkaSink) Publish(ctx context.Context, attempt models.FailedAttempt) {
	payload := attemptPayload{
		ID:         attempt.ID.String(),
		Code:       attempt.Code,
		Reason:     string(attempt.Reason),
		Detail:     attempt.Detail,
		Channel:    string(attempt.Channel),
		OperatorID: string(attempt.OperatorID),
		Terminal:   attempt.Terminal,
		OccurredAt: attempt.OccurredAt.Format(time.RFC3339Nano),
	}
	if !attempt.SessionID.IsNil() {
		payload.SessionID = attempt.SessionID.String()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal attempt for kafka mirror", "error", err)
		return
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(attempt.Code),
		Value: value,
	}
	s.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			s.logger.Warn("kafka mirror produce failed",
				"attempt_id", payload.ID,
				"error", err,
			)
		}
	})
}

// Close flushes pending produces and releases the client.
func (s *KafkaSink) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Flush(ctx)
	s.client.Close()
}
