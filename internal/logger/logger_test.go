package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(false, "debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New(true, "warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(false, "nonsense").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(false, "").GetLevel())
}
