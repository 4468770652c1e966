package schema_registry

import (
	"testing"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModuleProvidesRegistry(t *testing.T) {
	var registry Registry
	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{Type: TypeMemory}),
		fx.Supply(logger.NewNop()),
		fx.Populate(&registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registry)
	_, ok := registry.(*MemoryRegistry)
	assert.True(t, ok)
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry(Config{URL: "http://localhost:8081"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Client{}, registry)

	registry, err = NewRegistry(Config{Type: TypeApicurio, URL: "http://apicurio:8080/"}, nil)
	require.NoError(t, err)
	client, ok := registry.(*Client)
	require.True(t, ok)
	assert.Equal(t, "http://apicurio:8080/apis/ccompat/v7", client.url)

	_, err = NewRegistry(Config{Type: "glue"}, nil)
	assert.Error(t, err)

	_, err = NewRegistry(Config{Type: TypeConfluent}, nil)
	assert.Error(t, err, "confluent requires a URL")
}
