package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelParsing(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(Config{Level: "debug"}).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New(Config{Level: "warn"}).GetLevel())
	// Unknown and empty levels fall back to info.
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: "loud"}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{}).GetLevel())
}

func TestNop_IsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, Nop().GetLevel())
}
