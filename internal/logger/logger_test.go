package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	for _, env := range []string{"production", "development", "test"} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, Init("debug", env))
			assert.NotNil(t, Get())
		})
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("chatty", "development"))
	assert.True(t, Get().Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, Get().Desugar().Core().Enabled(zap.DebugLevel))
}

func TestLeveled(t *testing.T) {
	l := Leveled{zap.NewNop().Sugar()}
	assert.NotPanics(t, func() {
		l.Debug("debug", "k", 1)
		l.Info("info", "k", 2)
		l.Warn("warn", "k", 3)
		l.Error("error", "k", 4)
	})
}
