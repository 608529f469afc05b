package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_SinEndpointNoExporta(t *testing.T) {
	shutdown, err := Init(context.Background(), "vending-api", "")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_RequiereNombreDeServicio(t *testing.T) {
	_, err := Init(context.Background(), "", "http://localhost:4318")
	assert.Error(t, err)
}

func TestNewTraceExporter_EndpointSinHost(t *testing.T) {
	_, err := newTraceExporter(context.Background(), "http://")
	assert.Error(t, err)
}
