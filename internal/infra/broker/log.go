package broker

import (
	"context"
	"log/slog"
)

type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, topic, messageID string, body []byte) error {
	slog.InfoContext(ctx, "outbox message", "topic", topic, "message_id", messageID, "payload", string(body))
	return nil
}

func (LogPublisher) Close() error { return nil }
