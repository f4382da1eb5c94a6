package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("UTC+4", 4*60*60)

	log := New(&buf, "debug", loc)
	log.WithField("component", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	assert.Contains(t, ts, "+04:00")
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "nonsense", nil)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("dropped")
	assert.Empty(t, buf.String())
}
