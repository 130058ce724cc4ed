package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLevelIsQuiet(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetupLoggerLevels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{verbosity: 0, want: zerolog.WarnLevel},
		{verbosity: 1, want: zerolog.InfoLevel},
		{verbosity: 2, want: zerolog.DebugLevel},
		{verbosity: 3, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestGetLoggerTagsComponent(t *testing.T) {
	logger := GetLogger("sample")

	// The component field rides along on every event from this logger.
	assert.NotPanics(t, func() {
		logger.Debug().Msg("tagged")
	})
}
