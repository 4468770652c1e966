package schema_registry

import (
	"context"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the Schema Registry client.
// This module registers the Registry with the Fx dependency injection framework,
// making it available to other components in the application.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() schema_registry.Config {
//	            return schema_registry.Config{
//	                URL:      "http://localhost:8081",
//	                Username: "user",
//	                Password: "pass",
//	            }
//	        },
//	    ),
//	)
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterSchemaRegistryLifecycle),
)

// SchemaRegistryParams groups the dependencies needed to create a Schema Registry client
type SchemaRegistryParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates the configured Registry using dependency injection.
// The Observer is optional; when the metrics module is present every
// registry call is counted and timed.
func NewClientWithDI(params SchemaRegistryParams) (Registry, error) {
	return NewRegistry(params.Config, params.Observer)
}

// SchemaRegistryLifecycleParams groups the dependencies needed for Schema Registry lifecycle management
type SchemaRegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  Registry
	Config    Config
	Logger    *logger.Logger `optional:"true"`
}

// RegisterSchemaRegistryLifecycle logs when the registry adapter becomes
// available and when it is released. The HTTP client holds no resources
// that need closing.
func RegisterSchemaRegistryLifecycle(params SchemaRegistryLifecycleParams) {
	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Schema Registry client initialized", nil, map[string]interface{}{
				"type": params.Config.Type,
				"url":  params.Config.URL,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Schema Registry client shutdown", nil)
			return nil
		},
	})
}
