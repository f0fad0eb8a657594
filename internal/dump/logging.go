package dump

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a console logger on console. When a log file is
// configured, entries are also written to it as JSON with rotation. The
// returned closer releases the log file.
func NewLogger(configuration LoggingConfig, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(configuration.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("%w: log level %q", ErrInvalidConfiguration, configuration.Level)
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.Stamp,
			NoColor:    configuration.NoColor,
		},
	}

	var closer io.Closer = nopCloser{}

	if configuration.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   configuration.File,
			MaxSize:    configuration.MaxSize,
			MaxBackups: configuration.MaxBackups,
			MaxAge:     configuration.MaxAge,
			Compress:   configuration.Compress,
		}

		writers = append(writers, rotating)
		closer = rotating
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
