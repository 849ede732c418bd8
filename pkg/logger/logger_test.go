package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevelAndFormat(t *testing.T) {
	l := NewLogger("warn", "json")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	l = NewLogger("not-a-level", "text")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

func TestLoggerWritesFields(t *testing.T) {
	l := NewLogger("debug", "json")
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.WithFields(map[string]interface{}{"page": 2, "size": 10}).Info("notifications loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notifications loaded", entry["msg"])
	assert.EqualValues(t, 2, entry["page"])
	assert.EqualValues(t, 10, entry["size"])
}
