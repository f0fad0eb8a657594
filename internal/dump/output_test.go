package dump

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONToYAMLKeepsIntegers(t *testing.T) {
	t.Parallel()

	out, err := jsonToYAML([]byte(`{"id":"1123456789012345678","last_viewed":1123456789012345679,"ratio":0.5,"tags":[1,"a",null]}`))
	require.NoError(t, err)

	assert.Contains(t, string(out), "last_viewed: 1123456789012345679")
	assert.Contains(t, string(out), `id: "1123456789012345678"`)

	var document map[string]any

	require.NoError(t, yaml.Unmarshal(out, &document))
	assert.Equal(t, 0.5, document["ratio"])
	assert.Equal(t, []any{1, "a", nil}, document["tags"])

	_, err = jsonToYAML([]byte(`{"id":`))
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"-":                         "stdin",
		"captures/ready.json":       "ready",
		"captures/ready.json.gz":    "ready",
		"captures/ready.zlib":       "ready",
		"captures/ready-2021.jsonl": "ready-2021.jsonl",
	}

	for path, name := range tests {
		assert.Equal(t, name, outputName(path), path)
	}
}

func TestExpandInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"b.json", "a.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), PermissionWrite))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), PermissionDirectory))

	paths, err := expandInputs([]string{"-", dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, paths)

	_, err = expandInputs([]string{filepath.Join(dir, "missing")})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	report := Report{
		Summaries: []Summary{
			{Path: "a.json", Schema: "v2", SessionID: "123abc", UserID: "123", Version: 10, Guilds: 2, UnavailableGuilds: 1, ReadStates: 1},
		},
		Failures: map[string]error{
			"c.json": errors.New("d.session_type: no matching variant"),
			"b.json": ErrEmptyCapture,
		},
		Decoded: 1,
		Failed:  2,
	}

	var out bytes.Buffer

	require.NoError(t, WriteReport(&out, OutputSummary, report))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a.json\tv2\tsession=123abc\tuser=123\tv=10\tguilds=2\tunavailable=1\tread_states=1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "b.json\tFAILED\t"))
	assert.Equal(t, "c.json\tFAILED\td.session_type: no matching variant", lines[2])

	out.Reset()

	require.NoError(t, WriteReport(&out, OutputJSON, report))
	assert.Contains(t, out.String(), `"session_id":"123abc"`)
	assert.NotContains(t, out.String(), "FAILED")

	assert.EqualError(t, report.Err(), "one or more captures failed to decode: 2 of 3")
}
