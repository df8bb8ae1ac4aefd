package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(zapcore.InfoLevel, ParseLevel("nonsense"))
}

func TestInitializeHonoursLevel(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(Initialize("warn"))
	assert.False(Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(Log.Core().Enabled(zapcore.ErrorLevel))
}
