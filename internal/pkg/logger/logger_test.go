package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietLoggerOnlyEmitsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug("hidden", map[string]interface{}{"line": 1})
	log.Warn("hidden too", nil)
	assert.Empty(t, buf.String())

	log.Error("append failed", errors.New("disk full"), map[string]interface{}{"backend": "file"})
	assert.Contains(t, buf.String(), "append failed")
	assert.Contains(t, buf.String(), `err="disk full"`)
	assert.Contains(t, buf.String(), "backend=file")
}

func TestVerboseLoggerEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, true).Debug("dispatch", map[string]interface{}{"command": "ls"})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "command=ls")
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	log.Error("ignored", errors.New("x"), nil)
	log.Info("ignored", nil)
}
