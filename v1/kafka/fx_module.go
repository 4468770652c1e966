package kafka

import (
	"context"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"go.uber.org/fx"
)

// FXModule provides a *KafkaClient and, as Publisher, the same client.
// The writer is flushed and closed when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    kafka.FXModule,
//	    fx.Supply(kafka.Config{Brokers: []string{"localhost:9092"}, Topic: "schemasync.audit"}),
//	)
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewClientWithDI,
		func(c *KafkaClient) Publisher { return c },
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

// KafkaParams groups the dependencies for creating a Kafka client.
type KafkaParams struct {
	fx.In

	Config   Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a Kafka client from injected dependencies.
func NewClientWithDI(p KafkaParams) (*KafkaClient, error) {
	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		client.WithLogger(p.Logger)
	}
	return client.WithObserver(p.Observer), nil
}

// RegisterKafkaLifecycle closes the client on application stop.
func RegisterKafkaLifecycle(lc fx.Lifecycle, client *KafkaClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
