package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/classdex/internal/adapters/logger"
)

func TestLogger_InfoLevelByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.False(t, l.DebugEnabled())
}

func TestLogger_DebugToggle(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	buf.Reset()
	l.SetDebug(false)
	l.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Warn("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "WARN")
}
