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

func TestLogger_TextFormatSortsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: DEBUG, Output: &buf}).WithField("component", "idmap")

	log.Info("wrote mapping", "pid", 42, "file", "gid_map")

	line := buf.String()
	assert.Contains(t, line, "[INFO] wrote mapping")
	assert.Contains(t, line, "| component=idmap file=gid_map pid=42")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: WARN, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_ChildSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: INFO, Output: &buf})
	child := parent.WithField("component", "launcher")

	parent.SetLevel(DEBUG)
	child.Debug("visible after parent level change")

	assert.Contains(t, buf.String(), "visible after parent level change")
	assert.True(t, child.IsDebugEnabled())
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf, Format: FormatJSON})

	log.Error("capset failed", "error", errors.New("operation not permitted"), "stage", "IdentityMapped")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "capset failed", record["msg"])
	assert.Equal(t, "operation not permitted", record["error"])
	assert.Equal(t, "IdentityMapped", record["stage"])
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, WARN, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestConfigure_AppliesToNewLoggers(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DEBUG, Output: &buf, Format: FormatText})
	t.Cleanup(func() { Configure(Config{Level: INFO, Output: nil, Format: FormatText}) })

	New().WithField("component", "idmap-writer").Debug("writing gid_map")

	assert.Contains(t, buf.String(), "writing gid_map")
	assert.Contains(t, buf.String(), "component=idmap-writer")
}
