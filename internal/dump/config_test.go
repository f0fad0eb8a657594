package dump_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ready "github.com/WelcomerTeam/Sandwich-Ready"
	"github.com/WelcomerTeam/Sandwich-Ready/internal/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	configuration, err := dump.LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "v2", configuration.Schema)
	assert.Equal(t, dump.OutputSummary, configuration.Output)
	assert.Equal(t, dump.FrameAuto, configuration.Frame)
	assert.Positive(t, configuration.Workers)
	assert.Equal(t, "info", configuration.Logging.Level)
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "readydump.yaml", `
schema: v1
output: json
output_directory: /tmp/out
workers: 2
inputs:
  - a.json
logging:
  level: debug
  max_size: 50
`)
	envFile := writeFile(t, dir, ".env", "READYDUMP_FRAME=frame\nREADYDUMP_WORKERS=3\n")

	t.Cleanup(func() { os.Unsetenv("READYDUMP_FRAME") })

	t.Setenv("READYDUMP_WORKERS", "8")
	t.Setenv("READYDUMP_LOG_FILE", filepath.Join(dir, "readydump.log"))
	t.Setenv("READYDUMP_INPUTS", "b.json,c.json")

	configuration, err := dump.LoadConfig(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, "v1", configuration.Schema)
	assert.Equal(t, dump.OutputJSON, configuration.Output)
	assert.Equal(t, "/tmp/out", configuration.OutputDirectory)
	assert.Equal(t, dump.FrameFrame, configuration.Frame)
	assert.Equal(t, 8, configuration.Workers)
	assert.Equal(t, []string{"b.json", "c.json"}, configuration.Inputs)
	assert.Equal(t, "debug", configuration.Logging.Level)
	assert.Equal(t, 50, configuration.Logging.MaxSize)
	assert.Equal(t, filepath.Join(dir, "readydump.log"), configuration.Logging.File)

	version, err := configuration.Validate()
	require.NoError(t, err)
	assert.Equal(t, ready.SchemaV1, version)
}

func TestLoadConfigMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := dump.LoadConfig(filepath.Join(dir, "missing.yaml"), "")
	assert.True(t, errors.Is(err, dump.ErrReadConfigurationFailure))

	_, err = dump.LoadConfig("", filepath.Join(dir, ".env"))
	assert.NoError(t, err)

	path := writeFile(t, dir, "broken.yaml", "workers: [")

	_, err = dump.LoadConfig(path, "")
	assert.True(t, errors.Is(err, dump.ErrLoadConfigurationFailure))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := dump.DefaultConfig()
	valid.Inputs = []string{"capture.json"}

	tests := []struct {
		name   string
		mutate func(*dump.Config)
		err    error
	}{
		{"unknown schema", func(c *dump.Config) { c.Schema = "v7" }, ready.ErrUnknownSchema},
		{"unknown output", func(c *dump.Config) { c.Output = "xml" }, dump.ErrInvalidConfiguration},
		{"unknown frame", func(c *dump.Config) { c.Frame = "guess" }, dump.ErrInvalidConfiguration},
		{"no workers", func(c *dump.Config) { c.Workers = 0 }, dump.ErrInvalidConfiguration},
		{"no output directory", func(c *dump.Config) { c.Output = dump.OutputYAML }, dump.ErrInvalidConfiguration},
		{"no inputs", func(c *dump.Config) { c.Inputs = nil }, dump.ErrNoInputs},
	}

	for _, test := range tests {
		configuration := valid
		configuration.Inputs = append([]string(nil), valid.Inputs...)
		test.mutate(&configuration)

		_, err := configuration.Validate()
		assert.True(t, errors.Is(err, test.err), "%s: %v", test.name, err)
	}

	version, err := valid.Validate()
	require.NoError(t, err)
	assert.Equal(t, ready.SchemaV2, version)
}
