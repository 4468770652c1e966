package minio

import (
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"go.uber.org/fx"
)

// FXModule provides the *MinioClient and a reconciler.SchemaStore backed by
// it, replacing the engine's default local filesystem store.
//
// Usage:
//
//	app := fx.New(
//	    minio.FXModule,
//	    reconciler.FXModule,
//	    fx.Supply(minioConfig),
//	)
var FXModule = fx.Module("minio",
	fx.Provide(
		NewClientWithDI,
		NewSchemaStoreWithDI,
	),
)

// MinioParams groups the dependencies for creating a MinIO client.
type MinioParams struct {
	fx.In

	Config   Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func NewClientWithDI(p MinioParams) (*MinioClient, error) {
	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		client.WithLogger(p.Logger)
	}
	return client.WithObserver(p.Observer), nil
}

func NewSchemaStoreWithDI(client *MinioClient, cfg Config) reconciler.SchemaStore {
	return NewSchemaStore(client, cfg.Prefix)
}
