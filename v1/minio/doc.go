// Package minio stores schema files in MinIO or any S3-compatible object store.
//
// MinioClient is a thin wrapper around minio-go bound to one bucket, and
// SchemaStore adapts it to reconciler.SchemaStore so schemas can be
// registered from, and downloaded to, a bucket instead of a local directory.
//
//	client, err := minio.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	engine, err := reconciler.NewEngine(registry, minio.NewSchemaStore(client, "prod"), reconciler.Config{})
package minio
