// Package kafka publishes messages to Apache Kafka.
//
// The package wraps a segmentio/kafka-go writer bound to a single topic. It
// is used by schemasync to emit one audit event per reconciliation outcome,
// but knows nothing about schemas itself.
//
// Core Features:
//   - TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) broker connections
//   - gzip, snappy, lz4 and zstd compression
//   - Optional async batching
//   - Message headers, used to carry trace context
//   - Observer hook reporting every produce call
//
// Basic Usage:
//
//	client, err := kafka.NewClient(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "schemasync.audit",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	err = client.Publish(ctx, "orders-value", payload, map[string]string{
//		"content-type": "application/json",
//	})
//
// FX Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		kafka.FXModule,
//		fx.Supply(kafkaConfig),
//	)
//
// Thread Safety:
//
// Publish may be called concurrently. Close waits for in-flight publishes.
package kafka
