package schema_registry

import (
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

// NewRegistry builds the Registry selected by cfg.Type. Apicurio is reached
// through its Confluent compatible API, so it shares the HTTP client.
func NewRegistry(cfg Config, observer observability.Observer) (Registry, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", TypeConfluent:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return client.WithObserver(observer), nil
	case TypeApicurio:
		if cfg.URL != "" && !strings.Contains(cfg.URL, "/apis/ccompat/") {
			cfg.URL = strings.TrimSuffix(cfg.URL, "/") + apicurioCompatPath
		}
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return client.WithObserver(observer), nil
	case TypeMemory:
		return NewMemoryRegistry(), nil
	default:
		return nil, fmt.Errorf("unsupported schema registry type %q", cfg.Type)
	}
}
