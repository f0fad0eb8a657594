package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	ready "github.com/WelcomerTeam/Sandwich-Ready"
	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
)

// Summary describes one decoded capture.
type Summary struct {
	Path              string              `json:"path" yaml:"path"`
	Compression       Compression         `json:"compression" yaml:"compression"`
	Schema            ready.SchemaVersion `json:"schema" yaml:"schema"`
	SessionID         string              `json:"session_id" yaml:"session_id"`
	UserID            string              `json:"user_id" yaml:"user_id"`
	Version           int64               `json:"version" yaml:"version"`
	Guilds            int                 `json:"guilds" yaml:"guilds"`
	UnavailableGuilds int                 `json:"unavailable_guilds" yaml:"unavailable_guilds"`
	ReadStates        int                 `json:"read_states" yaml:"read_states"`
	Frame             bool                `json:"frame" yaml:"frame"`
}

// Report is the outcome of a run.
type Report struct {
	Summaries []Summary
	Failures  map[string]error
	Decoded   int64
	Failed    int64
	Duration  time.Duration
}

// Err returns ErrDecodeFailures when any capture failed to decode or to be
// written out.
func (r Report) Err() error {
	if r.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDecodeFailures, r.Failed, r.Failed+r.Decoded)
	}

	return nil
}

// Runner decodes captures concurrently.
type Runner struct {
	Logger        zerolog.Logger
	Configuration Config
	Registry      *prometheus.Registry
	Stdin         io.Reader

	decoder ready.Decoder

	decoded *atomic.Int64
	failed  *atomic.Int64
	guilds  *atomic.Int64
}

// NewRunner validates the configuration and prepares a runner with its own
// metrics registry.
func NewRunner(logger zerolog.Logger, configuration Config) (*Runner, error) {
	version, err := configuration.Validate()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	return &Runner{
		Logger:        logger,
		Configuration: configuration,
		Registry:      registry,
		Stdin:         os.Stdin,

		decoder: ready.NewDecoder(version, ready.NewMetrics(registry)),

		decoded: atomic.NewInt64(0),
		failed:  atomic.NewInt64(0),
		guilds:  atomic.NewInt64(0),
	}, nil
}

type result struct {
	err     error
	path    string
	summary Summary
}

// Run decodes every configured input. Inputs that are directories are
// expanded to the files they contain. Run stops handing out work when ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	started := time.Now()

	paths, err := expandInputs(r.Configuration.Inputs)
	if err != nil {
		return Report{}, err
	}

	if r.Configuration.OutputDirectory != "" && r.Configuration.Output != OutputSummary {
		if err := os.MkdirAll(r.Configuration.OutputDirectory, PermissionDirectory); err != nil {
			return Report{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	r.Logger.Info().
		Int("captures", len(paths)).
		Int("workers", r.Configuration.Workers).
		Str("schema", r.decoder.Schema.String()).
		Msg("Decoding captures")

	jobs := make(chan string)
	results := make(chan result, len(paths))

	var wg sync.WaitGroup

	for i := 0; i < r.Configuration.Workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range jobs {
				summary, err := r.process(path)
				results <- result{path: path, summary: summary, err: err}
			}
		}()
	}

dispatch:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- path:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)

	report := Report{Failures: make(map[string]error)}

	for res := range results {
		if res.err != nil {
			report.Failures[res.path] = res.err

			continue
		}

		report.Summaries = append(report.Summaries, res.summary)
	}

	sortSummaries(report.Summaries)

	report.Decoded = r.decoded.Load()
	report.Failed = r.failed.Load()
	report.Duration = time.Since(started)

	r.Logger.Info().
		Int64("decoded", report.Decoded).
		Int64("failed", report.Failed).
		Int64("guilds", r.guilds.Load()).
		Dur("duration", report.Duration).
		Msg("Finished decoding captures")

	if textfile := r.Configuration.MetricsTextfile; textfile != "" {
		if err := prometheus.WriteToTextfile(textfile, r.Registry); err != nil {
			return report, fmt.Errorf("failed to write metrics textfile: %w", err)
		}

		r.Logger.Debug().Str("path", textfile).Msg("Wrote metrics textfile")
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	return report, nil
}

func (r *Runner) process(path string) (Summary, error) {
	logger := r.Logger.With().Str("path", path).Logger()

	data, compression, err := ReadCapture(path, r.Stdin)
	if err != nil {
		r.failed.Inc()
		logger.Error().Err(err).Msg("Failed to read capture")

		return Summary{}, err
	}

	frame, err := r.isFrame(data)
	if err != nil {
		r.failed.Inc()
		logger.Error().Err(err).Msg("Failed to parse capture")

		return Summary{}, err
	}

	var payload ready.Payload
	if frame {
		payload, err = r.decoder.DecodeDispatch(data)
	} else {
		payload, err = r.decoder.DecodeBytes(data)
	}

	if err != nil {
		r.failed.Inc()
		logger.Error().Err(err).Str("result", ready.Result(err)).Msg("Failed to decode capture")

		return Summary{}, err
	}

	summary := Summary{
		Path:              path,
		Compression:       compression,
		Frame:             frame,
		Schema:            payload.Schema,
		SessionID:         payload.SessionID(),
		UserID:            payload.UserID(),
		Version:           payload.Version(),
		Guilds:            payload.GuildCount(),
		UnavailableGuilds: payload.UnavailableGuildCount(),
		ReadStates:        payload.ReadStateCount(),
	}

	if r.Configuration.Output != OutputSummary {
		written, err := r.writeOutput(path, payload)
		if err != nil {
			r.failed.Inc()
			logger.Error().Err(err).Msg("Failed to write output")

			return Summary{}, err
		}

		logger.Debug().Str("output", written).Msg("Wrote output")
	}

	r.decoded.Inc()
	r.guilds.Add(int64(payload.GuildCount()))

	logger.Info().
		Str("session_id", summary.SessionID).
		Str("user_id", summary.UserID).
		Int("guilds", summary.Guilds).
		Int("read_states", summary.ReadStates).
		Msg("Decoded capture")

	return summary, nil
}

// isFrame reports whether data is a whole gateway message rather than the
// bare d field.
func (r *Runner) isFrame(data []byte) (bool, error) {
	switch r.Configuration.Frame {
	case FrameRaw:
		return false, nil
	case FrameFrame:
		return true, nil
	}

	var probe struct {
		Op   *int64 `json:"op"`
		Data any    `json:"d"`
	}

	if err := sandwichjson.Unmarshal(data, &probe); err != nil {
		return false, fmt.Errorf("failed to unmarshal capture: %w", err)
	}

	return probe.Op != nil && probe.Data != nil, nil
}

func (r *Runner) writeOutput(path string, payload ready.Payload) (string, error) {
	data, err := ready.Encode(payload)
	if err != nil {
		return "", err
	}

	extension := ".json"

	if r.Configuration.Output == OutputYAML {
		data, err = jsonToYAML(data)
		if err != nil {
			return "", err
		}

		extension = ".yaml"
	}

	name := outputName(path) + extension
	target := filepath.Join(r.Configuration.OutputDirectory, name)

	if err := os.WriteFile(target, data, PermissionWrite); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}

	return target, nil
}

func outputName(path string) string {
	if path == "-" {
		return "stdin"
	}

	base := filepath.Base(path)
	for _, suffix := range []string{".gz", ".zlib", ".json"} {
		base = strings.TrimSuffix(base, suffix)
	}

	return base
}
