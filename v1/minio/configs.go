package minio

// Config defines the configuration for the MinIO schema store.
type Config struct {
	Connection ConnectionConfig `yaml:"connection"`

	// Prefix is prepended to every object key, e.g. "schemas/prod".
	Prefix string `yaml:"prefix" envconfig:"MINIO_PREFIX"`
}

// Enabled reports whether an endpoint and bucket are configured.
func (c Config) Enabled() bool {
	return c.Connection.Endpoint != "" && c.Connection.BucketName != ""
}

// ConnectionConfig contains MinIO server connection details.
type ConnectionConfig struct {
	Endpoint        string `yaml:"endpoint" envconfig:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"accessKeyID" envconfig:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secretAccessKey" envconfig:"MINIO_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"useSSL" envconfig:"MINIO_USE_SSL"`
	BucketName      string `yaml:"bucketName" envconfig:"MINIO_BUCKET_NAME"`
	Region          string `yaml:"region" envconfig:"MINIO_REGION"`

	// AccessBucketCreation creates the bucket on startup when it is missing.
	AccessBucketCreation bool `yaml:"accessBucketCreation" envconfig:"MINIO_ACCESS_BUCKET_CREATION"`
}
