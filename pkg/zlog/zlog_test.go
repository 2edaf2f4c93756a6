package zlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	for _, level := range []string{"", LevelNone, LevelDebug, LevelInfo, "warn", "error"} {
		l, err := New(level)
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, l)
	}
}

func TestBadLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)
}

func TestMustNew(t *testing.T) {
	assert.NotNil(t, MustNew(LevelNone))
	assert.Panics(t, func() { MustNew("chatty") })
}
