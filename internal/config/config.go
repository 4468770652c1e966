// Package config loads the schemasync configuration.
//
// Values are layered: built-in defaults, then the YAML file, then
// environment variables. SCHEMASYNC_REGISTRY__URL overrides registry.url;
// a double underscore separates nesting levels and matching is case-insensitive.
package config

import (
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/schemasync/v1/kafka"
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/metrics"
	"github.com/Aleph-Alpha/schemasync/v1/minio"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/Aleph-Alpha/schemasync/v1/report"
	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/tracer"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "SCHEMASYNC_"

// Config is the top-level configuration of the schemasync application.
type Config struct {
	Logger     logger.Config          `yaml:"logger"`
	Tracer     tracer.Config          `yaml:"tracer"`
	Metrics    metrics.Config         `yaml:"metrics"`
	Registry   schema_registry.Config `yaml:"registry"`
	Reconciler reconciler.Config      `yaml:"reconciler"`
	Report     report.Config          `yaml:"report"`
	Kafka      kafka.Config           `yaml:"kafka"`
	Minio      minio.Config           `yaml:"minio"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"logger.level":          "info",
		"logger.service_name":   "schemasync",
		"logger.enable_tracing": false,
		"logger.encoding":       "json",

		"tracer.serviceName":  "schemasync",
		"tracer.appEnv":       "development",
		"tracer.enableExport": false,
		"tracer.endpoint":     "",

		"metrics.serve":                     false,
		"metrics.address":                   metrics.DefaultMetricsAddress,
		"metrics.enable_default_collectors": false,
		"metrics.namespace":                 metrics.DefaultNamespace,
		"metrics.service_name":              "schemasync",
		"metrics.textfile_path":             "",

		"registry.type":     schema_registry.TypeConfluent,
		"registry.url":      "",
		"registry.username": "",
		"registry.password": "",
		"registry.token":    "",
		"registry.timeout":  "10s",

		"reconciler.dryRun":    false,
		"reconciler.directory": "schemas",

		"report.table": true,
		"report.audit": false,

		"kafka.brokers":                "",
		"kafka.topic":                  "schemasync.audit",
		"kafka.requiredAcks":           kafka.DefaultRequiredAcks,
		"kafka.maxAttempts":            kafka.DefaultMaxAttempts,
		"kafka.writeTimeout":           kafka.DefaultWriteTimeout.String(),
		"kafka.async":                  false,
		"kafka.batchSize":              kafka.DefaultBatchSize,
		"kafka.batchTimeout":           kafka.DefaultBatchTimeout.String(),
		"kafka.compressionCodec":       "",
		"kafka.tls.enabled":            false,
		"kafka.tls.caCertPath":         "",
		"kafka.tls.clientCertPath":     "",
		"kafka.tls.clientKeyPath":      "",
		"kafka.tls.insecureSkipVerify": false,
		"kafka.sasl.enabled":           false,
		"kafka.sasl.mechanism":         "",
		"kafka.sasl.username":          "",
		"kafka.sasl.password":          "",

		"minio.prefix":                          "",
		"minio.connection.endpoint":             "",
		"minio.connection.accessKeyID":          "",
		"minio.connection.secretAccessKey":      "",
		"minio.connection.useSSL":               false,
		"minio.connection.bucketName":           "",
		"minio.connection.region":               "",
		"minio.connection.accessBucketCreation": false,
	}
}

// Load reads the configuration. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ToLower(key)] = key
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		if canonical, ok := known[key]; ok {
			return canonical
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
