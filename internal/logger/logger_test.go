package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	l := New(&buf, false)

	l.Step("Creating %s", "app")
	l.Info("plain")
	l.Success("done")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "==> Creating app\n")
	assert.Contains(t, out, "    plain\n")
	assert.Contains(t, out, "[ OK ] done\n")
	assert.Contains(t, out, "[WARN] careful\n")
	assert.Contains(t, out, "[FAIL] broken\n")
	assert.NotContains(t, out, "hidden")
}

func TestLoggerDebugEnabled(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	New(&buf, true).Debug("value=%d", 3)

	assert.Equal(t, "[DBG ] value=3\n", buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing to see")
	})
}
