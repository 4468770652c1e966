package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersAvro = `{"type":"record","name":"Order","namespace":"acme","fields":[{"name":"id","type":"string"}]}`

type fixture struct {
	fs         afero.Fs
	dir        string
	configPath string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fs := afero.NewOsFs()
	dir := t.TempDir()
	f := fixture{fs: fs, dir: dir, configPath: filepath.Join(dir, "schemasync.yaml")}

	require.NoError(t, afero.WriteFile(fs, f.configPath, []byte(`
logger:
  level: error
registry:
  type: memory
reconciler:
  directory: `+filepath.Join(dir, "schemas")+`
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "manifest.yaml"), []byte(`
schemas:
  - subject: orders-value
    type: AVRO
    compatibilityMode: FULL
removedSubjects:
  - legacy-value
`), 0o644))
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "schemas"), 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "schemas", "orders-value.avsc"), []byte(ordersAvro), 0o644))
	return f
}

func (f fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	command := newRootCommand(f.fs)
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(append([]string{"--config", f.configPath}, args...))
	err := command.ExecuteContext(context.Background())
	return strings.ToLower(out.String()), err
}

func TestRegisterCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "register", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "orders-value")
	assert.Contains(t, out, "registered")
	assert.Contains(t, out, "compatibility-updated")
}

func TestRegisterCommandDryRunFlag(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "--dry-run", "register", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "register (dry-run)")
}

func TestRegisterCommandRequiresManifest(t *testing.T) {
	f := newFixture(t)

	_, err := f.execute(t, "register")
	assert.ErrorContains(t, err, "manifest")
}

func TestRegisterCommandFailsOnMissingFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.fs.Remove(filepath.Join(f.dir, "schemas", "orders-value.avsc")))

	out, err := f.execute(t, "register", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	assert.Error(t, err)
	assert.Contains(t, out, "failed")
}

func TestDownloadCommandFlags(t *testing.T) {
	f := newFixture(t)

	_, err := f.execute(t, "download")
	assert.ErrorContains(t, err, "exactly one of --manifest or --all")

	_, err = f.execute(t, "download", "--all", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	assert.ErrorContains(t, err, "exactly one of --manifest or --all")

	out, err := f.execute(t, "download", "--all")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDeleteCommandCombinesArgsAndManifest(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "--dry-run", "delete", "payments-value", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "payments-value")
	assert.Contains(t, out, "legacy-value")
	assert.Contains(t, out, "deleted")
}

func TestDeleteCommandNothingToRemove(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to remove.")
}

func TestPruneCommandOnEmptyRegistry(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "prune", "--manifest", filepath.Join(f.dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to remove.")
}

func TestSubjectsCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.execute(t, "subjects")
	require.NoError(t, err)
	assert.Contains(t, out, "compatibility mode")
}

func TestRegistryURLFlagOverridesConfig(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, f.configPath, []byte(`
logger:
  level: error
registry:
  type: confluent
`), 0o644))

	_, err := f.execute(t, "--registry-url", "not a url", "subjects")
	assert.ErrorContains(t, err, "failed to build application")
}
