package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=interface.go -destination=mock_publisher.go -package=kafka

// Publisher sends messages to the configured topic.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte, headers map[string]string) error
	Close() error
}

// Logger receives the writer's internal errors.
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
}

// messageWriter is the subset of *kafka.Writer the client uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
