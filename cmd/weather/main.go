package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/logging"
)

const usage = `Usage: weather <command> [flags] [args]

Commands:
  configure <open-weather|weather-api>   store an API key for a provider
  get [-coords lat,lon] <location> [date] print weather ("now" or "YYYY-MM-DD HH:MM:SS")
  watch [-every 15m] <location>           print current weather periodically
  serve [-port 8080]                      expose the lookup over HTTP
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli{
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	code := c.run(ctx, os.Args[1:])
	if code != 0 {
		logger.Debug("exiting with error", zap.Int("code", code))
	}
	stop()
	logger.Sync() //nolint:errcheck
	os.Exit(code)
}
