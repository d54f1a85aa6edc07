package logger_test

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraph/logger"
)

func TestNewLogger_KnownLevel(t *testing.T) {
	l := logger.NewLogger("debug", "test")
	require.NotNil(t, l)
	require.True(t, l.IsEnabledFor(logging.DEBUG))
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := logger.NewLogger("chatty", "test")
	require.NotNil(t, l)
	require.True(t, l.IsEnabledFor(logging.INFO))
	require.False(t, l.IsEnabledFor(logging.DEBUG))
}
