package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemasync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, schema_registry.TypeConfluent, cfg.Registry.Type)
	assert.Equal(t, 10*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "schemas", cfg.Reconciler.Directory)
	assert.False(t, cfg.Reconciler.DryRun)
	assert.True(t, cfg.Report.Table)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Minio.Enabled())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
registry:
  url: http://registry:8081
  timeout: 3s
reconciler:
  dryRun: true
  directory: contracts
kafka:
  brokers: [kafka-1:9092, kafka-2:9092]
  sasl:
    enabled: true
    mechanism: SCRAM-SHA-512
minio:
  connection:
    endpoint: minio:9000
    bucketName: schemas
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://registry:8081", cfg.Registry.URL)
	assert.Equal(t, 3*time.Second, cfg.Registry.Timeout)
	assert.True(t, cfg.Reconciler.DryRun)
	assert.Equal(t, "contracts", cfg.Reconciler.Directory)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "SCRAM-SHA-512", cfg.Kafka.SASL.Mechanism)
	assert.True(t, cfg.Minio.Enabled())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
registry:
  url: http://registry:8081
reconciler:
  dryRun: false
`)
	t.Setenv("SCHEMASYNC_REGISTRY__URL", "https://registry.example.com")
	t.Setenv("SCHEMASYNC_RECONCILER__DRYRUN", "true")
	t.Setenv("SCHEMASYNC_KAFKA__BROKERS", "a:9092,b:9092")
	t.Setenv("SCHEMASYNC_MINIO__CONNECTION__BUCKETNAME", "exports")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://registry.example.com", cfg.Registry.URL)
	assert.True(t, cfg.Reconciler.DryRun)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "exports", cfg.Minio.Connection.BucketName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load config file")
}
