package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient wraps the MinIO client bound to a single bucket.
type MinioClient struct {
	client *minio.Client
	cfg    Config

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	logger Logger
}

// NewClient connects to MinIO, validates the credentials and makes sure the
// bucket exists, creating it when AccessBucketCreation is set.
//
// Example:
//
//	client, err := minio.NewClient(minio.Config{
//	    Connection: minio.ConnectionConfig{
//	        Endpoint:        "localhost:9000",
//	        AccessKeyID:     "minio_admin",
//	        SecretAccessKey: "minio_admin",
//	        BucketName:      "schemas",
//	    },
//	})
func NewClient(cfg Config) (*MinioClient, error) {
	client, err := connectToMinio(cfg)
	if err != nil {
		return nil, err
	}

	m := &MinioClient{client: client, cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.ensureBucketExists(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// WithObserver attaches an observer notified after every storage operation.
func (m *MinioClient) WithObserver(observer observability.Observer) *MinioClient {
	m.observer = observer
	return m
}

// WithLogger attaches a logger for lifecycle events.
func (m *MinioClient) WithLogger(logger Logger) *MinioClient {
	m.logger = logger
	return m
}

// Bucket returns the bucket all objects are stored in.
func (m *MinioClient) Bucket() string { return m.cfg.Connection.BucketName }

func (m *MinioClient) Put(ctx context.Context, objectKey string, reader io.Reader, size int64) (int64, error) {
	start := time.Now()
	info, err := m.client.PutObject(ctx, m.Bucket(), objectKey, reader, size, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	err = TranslateError(err)
	m.observeOperation("put", objectKey, time.Since(start), err, info.Size)
	if err != nil {
		return 0, fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}
	return info.Size, nil
}

func (m *MinioClient) Get(ctx context.Context, objectKey string) ([]byte, error) {
	start := time.Now()
	data, err := m.get(ctx, objectKey)
	m.observeOperation("get", objectKey, time.Since(start), err, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectKey, err)
	}
	return data, nil
}

func (m *MinioClient) get(ctx context.Context, objectKey string) ([]byte, error) {
	// GetObject is lazy; errors such as NoSuchKey surface on the first read.
	reader, err := m.client.GetObject(ctx, m.Bucket(), objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, TranslateError(err)
	}
	defer func() { _ = reader.Close() }()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, TranslateError(err)
	}
	return buf.Bytes(), nil
}

func (m *MinioClient) Delete(ctx context.Context, objectKey string) error {
	start := time.Now()
	err := TranslateError(m.client.RemoveObject(ctx, m.Bucket(), objectKey, minio.RemoveObjectOptions{}))
	m.observeOperation("delete", objectKey, time.Since(start), err, 0)
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}

func connectToMinio(cfg Config) (*minio.Client, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}
	if cfg.Connection.BucketName == "" {
		return nil, fmt.Errorf("bucket name is empty")
	}

	return minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
}

func (m *MinioClient) ensureBucketExists(ctx context.Context) error {
	bucketName := m.Bucket()

	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("%w: failed to check if bucket %s exists: %w", ErrConnectionFailed, bucketName, err)
	}
	if exists {
		return nil
	}
	if !m.cfg.Connection.AccessBucketCreation {
		return fmt.Errorf("%w: %s, please create it manually", ErrBucketNotFound, bucketName)
	}

	m.logInfo(ctx, "Bucket does not exist, creating it", map[string]interface{}{
		"bucket": bucketName,
		"region": m.cfg.Connection.Region,
	})
	if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.cfg.Connection.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

func (m *MinioClient) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if m.logger != nil {
		m.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (m *MinioClient) observeOperation(operation, objectKey string, duration time.Duration, err error, size int64) {
	if m.observer == nil {
		return
	}
	m.observer.ObserveOperation(observability.OperationContext{
		Component:   "minio",
		Operation:   operation,
		Resource:    m.Bucket(),
		SubResource: objectKey,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
