package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/smartbizlabs/assistgen/libs/kafkax"
)

const topicGenerated = "assistant.generated.v1"

// Publisher emits a compact event after each successful generation. Writes
// are best-effort: failures end up in the log and the request succeeds
// regardless.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(brokers []string, logger *slog.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  brokers,
			Balancer: &kafka.Hash{},
		}),
		logger: logger,
	}
}

func (p *Publisher) Close() {
	if p != nil && p.writer != nil {
		_ = p.writer.Close()
	}
}

type generatedEvent struct {
	BusinessName string    `json:"business_name"`
	Tier         string    `json:"tier"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Publisher) GenerationCompleted(ctx context.Context, businessName, tier string, createdAt time.Time) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(generatedEvent{
		BusinessName: businessName,
		Tier:         tier,
		CreatedAt:    createdAt,
	})
	if err != nil {
		p.logger.Error("event payload marshal failed", "err", err)
		return
	}

	msg := kafka.Message{
		Topic: topicGenerated,
		Key:   []byte(businessName),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(topicGenerated)},
		},
	}
	msg.Headers = kafkax.InjectTraceHeaders(ctx, msg.Headers)

	writeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		p.logger.Error("event publish failed", "topic", topicGenerated, "err", err)
	}
}
