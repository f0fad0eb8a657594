package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
)

const (
	PermissionWrite     = 0o600
	PermissionDirectory = 0o755
)

// expandInputs replaces directories with the regular files directly inside
// them, in name order.
func expandInputs(inputs []string) ([]string, error) {
	paths := make([]string, 0, len(inputs))

	for _, input := range inputs {
		if input == "-" {
			paths = append(paths, input)

			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("failed to stat input: %w", err)
		}

		if !info.IsDir() {
			paths = append(paths, input)

			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory: %w", err)
		}

		for _, entry := range entries {
			if entry.Type().IsRegular() {
				paths = append(paths, filepath.Join(input, entry.Name()))
			}
		}
	}

	return paths, nil
}

func sortSummaries(summaries []Summary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Path < summaries[j].Path
	})
}

// jsonToYAML re-encodes a JSON document as YAML. Integers keep their exact
// value.
func jsonToYAML(data []byte) ([]byte, error) {
	document, err := sandwichjson.UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal json: %w", err)
	}

	out, err := yaml.Marshal(yamlValue(document))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal yaml: %w", err)
	}

	return out, nil
}

func yamlValue(node any) any {
	switch n := node.(type) {
	case map[string]any:
		for key, value := range n {
			n[key] = yamlValue(value)
		}

		return n
	case []any:
		for i, value := range n {
			n[i] = yamlValue(value)
		}

		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}

		if f, err := n.Float64(); err == nil {
			return f
		}

		return n.String()
	default:
		return node
	}
}

// WriteReport writes the summaries of report to w in the given output mode.
// Summary mode writes one line per capture.
func WriteReport(w io.Writer, output string, report Report) error {
	switch output {
	case OutputJSON:
		if err := sandwichjson.MarshalToWriter(w, report.Summaries); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		return nil
	case OutputYAML:
		data, err := yaml.Marshal(report.Summaries)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		_, err = w.Write(data)

		return err
	}

	for _, summary := range report.Summaries {
		_, err := fmt.Fprintf(w, "%s\t%s\tsession=%s\tuser=%s\tv=%d\tguilds=%d\tunavailable=%d\tread_states=%d\n",
			summary.Path, summary.Schema, summary.SessionID, summary.UserID, summary.Version,
			summary.Guilds, summary.UnavailableGuilds, summary.ReadStates)
		if err != nil {
			return err
		}
	}

	paths := make([]string, 0, len(report.Failures))
	for path := range report.Failures {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "%s\tFAILED\t%s\n", path, report.Failures[path]); err != nil {
			return err
		}
	}

	return nil
}
