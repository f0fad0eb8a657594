package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WelcomerTeam/Sandwich-Ready/internal/dump"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("readydump", flag.ContinueOnError)

	configurationPath := flags.String("config", os.Getenv(dump.EnvPrefix+"CONFIG"), "path of a YAML configuration file")
	envFile := flags.String("env-file", ".env", "path of a .env file")
	schema := flags.String("schema", "", "ready schema to decode against (v1, v2)")
	output := flags.String("output", "", "output mode (summary, json, yaml)")
	outputDirectory := flags.String("output-dir", "", "directory re-encoded payloads are written to")
	frame := flags.String("frame", "", "capture shape (auto, raw, frame)")
	workers := flags.Int("workers", 0, "number of captures decoded at once")
	logLevel := flags.String("log-level", "", "log level")
	logFile := flags.String("log-file", "", "file logs are also written to")
	metricsTextfile := flags.String("metrics-textfile", "", "file decode metrics are written to in the Prometheus text format")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	configuration, err := dump.LoadConfig(*configurationPath, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 1
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "schema":
			configuration.Schema = *schema
		case "output":
			configuration.Output = *output
		case "output-dir":
			configuration.OutputDirectory = *outputDirectory
		case "frame":
			configuration.Frame = *frame
		case "workers":
			configuration.Workers = *workers
		case "log-level":
			configuration.Logging.Level = *logLevel
		case "log-file":
			configuration.Logging.File = *logFile
		case "metrics-textfile":
			configuration.MetricsTextfile = *metricsTextfile
		}
	})

	if flags.NArg() > 0 {
		configuration.Inputs = flags.Args()
	}

	logger, closer, err := dump.NewLogger(configuration.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 1
	}

	defer closer.Close()

	runner, err := dump.NewRunner(logger, configuration)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")

		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, err := runner.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Run failed")

		return 1
	}

	if err := dump.WriteReport(os.Stdout, configuration.Output, report); err != nil {
		logger.Error().Err(err).Msg("Failed to write report")

		return 1
	}

	if err := report.Err(); err != nil {
		logger.Warn().Err(err).Msg("Some captures failed to decode")

		return 1
	}

	return 0
}
