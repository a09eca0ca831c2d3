package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    LogLevel
		wantErr bool
	}{
		{name: "error", level: "error", want: LogLevelError},
		{name: "warn", level: "warn", want: LogLevelWarn},
		{name: "info", level: "info", want: LogLevelInfo},
		{name: "debug", level: "debug", want: LogLevelDebug},
		{name: "trace", level: "trace", want: LogLevelTrace},
		{name: "unknown", level: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_levelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, LogLevelWarn)

	logger.Debug("hidden %d", 1)
	assert.Zero(t, buf.Len())

	logger.Warn("shown %d", 2)
	entry := map[string]string{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	previous := getDefaultLogger()
	defer SetDefaultLogger(previous)

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, LogLevelTrace))
	Trace("tick %d", 7)
	assert.Contains(t, buf.String(), `"msg":"tick 7"`)
	assert.Contains(t, buf.String(), `"level":"trace"`)
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, LogLevelError)
	assert.False(t, logger.Enabled(LogLevelInfo))

	logger.SetLevel(LogLevelDebug)
	assert.True(t, logger.Enabled(LogLevelInfo))
	assert.False(t, logger.Enabled(LogLevelTrace))

	logger.Info("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
