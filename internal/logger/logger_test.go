package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/marmos91/nfswire/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelFiltering tests that messages below the configured level are
// suppressed.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "INFO", "text")

	logger.Debug("hidden", "key", "value")
	assert.Empty(t, buf.String())

	logger.Info("shown", "key", "value")
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")

	logger.SetLevel("ERROR")
	buf.Reset()
	logger.Warn("also hidden")
	assert.Empty(t, buf.String())
	logger.Error("always shown")
	assert.Contains(t, buf.String(), "always shown")
}

// TestTextFormat tests the text layout: bracketed level, message, then
// key=value pairs.
func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "DEBUG", "text")

	logger.Debug("decoding", "type", "fattr3", "bytes", 84)
	out := buf.String()
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "decoding")
	assert.Contains(t, out, "type=fattr3")
	assert.Contains(t, out, "bytes=84")
}

// TestJSONFormat tests that json output is one parseable object per line
// with the standard slog keys.
func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "INFO", "json")

	logger.Info("encoded", "type", "nfs_fh3")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "encoded", entry["msg"])
	assert.Equal(t, "nfs_fh3", entry["type"])
	assert.Equal(t, "INFO", entry["level"])
}

// TestWith tests attribute pre-binding.
func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "INFO", "text")

	l := logger.With("component", "codec")
	l.Info("ready")
	out := buf.String()
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "component=codec")
}

// TestSetLevel_InvalidIgnored tests that unknown level names leave the
// configuration untouched.
func TestSetLevel_InvalidIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "INFO", "text")

	logger.SetLevel("LOUD")
	logger.Info("still info")
	assert.Contains(t, buf.String(), "still info")
}
