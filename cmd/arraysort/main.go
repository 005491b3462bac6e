/*
Arraysort reads values, pushes them onto a growable array and prints them
sorted, one "(index): value" line each.

Usage:

	arraysort [flags] [values...]

Values come from the arguments, or from standard input (whitespace
separated) when there are none. With --interactive and no values, they are
prompted for instead.

The flags are:

	-a, --algorithm NAME
		Sort with bubble (default), selection or insertion.
	-e, --element TYPE
		Parse values as int (default), float, char or string.
	-g, --growth POLICY
		Grow the array by doubling (default) or by one slot at a time.
	--max-capacity N
		Fail once the array would need more than N slots. 0 means no limit.
	-i, --interactive
		Choose the algorithm from a menu.
	--natural
		Order strings naturally, so item2 sorts before item10.
	--reverse
		Sort in descending order.
	--env-file PATH
		Load settings from a .env, .json or .yaml file.
	--color
		Color error reports.

Settings not given as flags are read from ARRAYSORT_ALGORITHM,
ARRAYSORT_ELEMENT, ARRAYSORT_GROWTH and ARRAYSORT_MAX_CAPACITY. Logging is
configured with LOG_LEVEL, LOG_JSON and LOG_OUTPUT. Setting OTEL_ENABLED=true
and OTEL_EXPORTER_OTLP_ENDPOINT exports traces and logs over OTLP/HTTP.
*/
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/amp-labs/amp-arrays/cli"
	"github.com/amp-labs/amp-arrays/diagnostics"
	"github.com/amp-labs/amp-arrays/logger"
	"github.com/amp-labs/amp-arrays/sorting"
	"github.com/amp-labs/amp-arrays/telemetry"
	"github.com/spf13/pflag"
)

const (
	appName         = "arraysort"
	shutdownTimeout = 5 * time.Second
)

const (
	exitSuccess = 0
	exitError   = 1
	exitPanic   = 2
	exitUsage   = 64
)

var exitCode int

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)

			exitCode = exitPanic
		}

		stop()
		os.Exit(exitCode)
	}()

	ctx = logger.WithSubsystem(ctx, appName)

	providers, err := setupTelemetry(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())

		exitCode = exitError

		return
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := providers.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
	}()

	if _, err := logger.ConfigureLogging(ctx, appName, logger.WithHandler(providers.LogHandler())); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())

		exitCode = exitError

		return
	}

	exitCode = run(providers.Context(ctx), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func setupTelemetry(ctx context.Context) (*telemetry.Providers, error) {
	otelCfg, err := telemetry.LoadConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	return telemetry.Setup(ctx, otelCfg)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cfg, err := parseConfig(ctx, args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}

		_ = diagnostics.Report(stderr, err, cfg.Color)

		return exitUsage
	}

	if cfg.Interactive {
		if err := choose(&cfg); err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err.Error())

			return exitError
		}
	}

	if len(cfg.Values) == 0 && !cfg.Interactive {
		cfg.Values, err = readValues(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: reading values: %s\n", err.Error())

			return exitError
		}
	}

	if err := sortValues(ctx, cfg, stdout); err != nil {
		logger.Get(ctx).Debug("arraysort failed", "error", err)

		_ = diagnostics.Report(stderr, err, cfg.Color)

		return exitError
	}

	return exitSuccess
}

// choose fills in the algorithm, and the values when there are none, from
// terminal prompts.
func choose(cfg *config) error {
	alg, err := cli.SelectOne("Sort algorithm", sorting.Names()...)
	if err != nil {
		return err
	}

	cfg.Algorithm = alg

	if len(cfg.Values) > 0 {
		return nil
	}

	cfg.Values, err = cli.PromptValues(fmt.Sprintf("Values (%s, separated by spaces)", cfg.Element))

	return err
}

func readValues(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []string

	for scanner.Scan() {
		values = append(values, scanner.Text())
	}

	return values, scanner.Err()
}
