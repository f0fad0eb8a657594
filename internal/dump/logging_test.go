package dump_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/WelcomerTeam/Sandwich-Ready/internal/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "readydump.log")

	configuration := dump.DefaultConfig().Logging
	configuration.File = file
	configuration.NoColor = true

	var console bytes.Buffer

	logger, closer, err := dump.NewLogger(configuration, &console)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("session_id", "123abc").Msg("Decoded capture")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "Decoded capture")
	assert.Contains(t, console.String(), "session_id=123abc")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"123abc"`)
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	configuration := dump.DefaultConfig().Logging
	configuration.Level = "loud"

	_, _, err := dump.NewLogger(configuration, &bytes.Buffer{})
	assert.True(t, errors.Is(err, dump.ErrInvalidConfiguration))
}
