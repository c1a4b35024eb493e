package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestVerboseToggle(t *testing.T) {
	defer resetLogger()

	t.Run("disabled by default", func(t *testing.T) {
		assert.False(t, IsVerbose())
	})

	t.Run("enable and disable", func(t *testing.T) {
		SetVerbose(true)
		assert.True(t, IsVerbose())

		SetVerbose(false)
		assert.False(t, IsVerbose())
	})
}

func TestOutput(t *testing.T) {
	defer resetLogger()

	t.Run("silent when verbose off", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(false)

		Debug("hidden %d", 1)
		Info("hidden")
		Warn("hidden")
		Section("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("prefixes levels when verbose on", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(true)

		Debug("d %d", 1)
		Info("i")
		Warn("w")
		Section("s")

		out := buf.String()
		assert.Contains(t, out, "[DEBUG] d 1\n")
		assert.Contains(t, out, "[INFO] i\n")
		assert.Contains(t, out, "[WARN] w\n")
		assert.Contains(t, out, "=== s ===\n")
	})
}
