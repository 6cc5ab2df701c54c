package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel)

	log.Info("CatalogService", "catalog loaded", map[string]interface{}{"sheets": 4})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "CatalogService", entry["component"])
	assert.Equal(t, "catalog loaded", entry["message"])
	assert.Equal(t, float64(4), entry["sheets"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("DrawController", "tick", nil)
	log.Info("DrawController", "draw complete", nil)
	assert.Zero(t, buf.Len())

	log.Error("ThumbnailService", errors.New("decode failed"), map[string]interface{}{"sheet": "A"})
	out := buf.String()
	assert.True(t, strings.Contains(out, `"error":"decode failed"`), out)
	assert.True(t, strings.Contains(out, `"sheet":"A"`), out)
}
