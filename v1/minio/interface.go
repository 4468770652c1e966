package minio

import (
	"context"
	"io"
)

// Client stores objects in the configured bucket.
//
// This interface is implemented by the concrete *MinioClient type.
type Client interface {
	// Put uploads an object. A size of -1 streams an object of unknown size.
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64) (int64, error)

	// Get returns the content of an object. Missing objects fail with ErrObjectNotFound.
	Get(ctx context.Context, objectKey string) ([]byte, error)

	// Delete removes an object.
	Delete(ctx context.Context, objectKey string) error
}

// Logger is the subset of the std logger the client logs lifecycle events with.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
