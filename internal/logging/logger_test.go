package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"trace":   logrus.TraceLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), in)
	}
}

func TestSetup_WritesToRotatedFile(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	}()

	base := filepath.Join(t.TempDir(), "strivefit")
	Setup(LoggerSetupParams{
		LogFileName:   base,
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	logrus.WithField("user", "u1").Info("snapshot recorded")

	raw, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"snapshot recorded"`)
	assert.Contains(t, string(raw), `"user":"u1"`)
}
