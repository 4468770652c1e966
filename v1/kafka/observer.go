package kafka

import (
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

func (k *KafkaClient) observeOperation(operation, key string, duration time.Duration, err error, size int64) {
	if k.observer == nil {
		return
	}
	k.observer.ObserveOperation(observability.OperationContext{
		Component:   "kafka",
		Operation:   operation,
		Resource:    k.cfg.Topic,
		SubResource: key,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
