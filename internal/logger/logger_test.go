package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("info", "production", "api", &buf)

	log.Info().Str("resource", "cliente").Msg("created")
	log.Debug().Msg("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created", entry["message"])
	assert.Equal(t, "cliente", entry["resource"])
	assert.Equal(t, "api", entry["service"])
	assert.Equal(t, "production", entry["env"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	log := newWithWriter("nonsense", "production", "api", &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
