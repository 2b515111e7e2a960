package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-cli/internal/api/http"
	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/credential"
	"github.com/i474232898/weather-cli/internal/render"
	"github.com/i474232898/weather-cli/internal/scheduler"
	"github.com/i474232898/weather-cli/internal/weather"
)

var errUsage = errors.New("usage")

type cli struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run dispatches a subcommand and returns the process exit code.
func (c *cli) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "configure":
		err = c.configure(args[1:])
	case "get":
		err = c.get(ctx, args[1:])
	case "watch":
		err = c.watch(ctx, args[1:])
	case "serve":
		err = c.serve(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return 0
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintf(c.stderr, "%v\n\n%s", err, usage)
		return 2
	default:
		c.logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(c.stderr, "ERROR: %v\n", err)
		return 1
	}
}

func (c *cli) configure(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: configure takes exactly one provider name", errUsage)
	}
	kind, err := credential.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	switch kind {
	case credential.KindOpenWeather:
		fmt.Fprintln(c.stdout, "OpenWeather api key:")
	case credential.KindWeatherAPI:
		fmt.Fprintln(c.stdout, "Weather API api key:")
	}

	line, err := bufio.NewReader(c.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read api key: %w", err)
	}

	cred, err := credential.New(kind, line)
	if err != nil {
		return err
	}
	if err := credential.Save(c.cfg.ConfigFile, cred); err != nil {
		return err
	}

	c.logger.Info("credential saved", zap.Stringer("provider", kind), zap.String("path", c.cfg.ConfigFile))
	fmt.Fprintln(c.stdout, "Key saved successfully.")
	return nil
}

// newService loads the stored credential and wires the matching provider.
func (c *cli) newService() (*weather.Service, error) {
	cred, err := credential.FromFile(c.cfg.ConfigFile)
	if err != nil {
		if errors.Is(err, weather.ErrFile) {
			return nil, fmt.Errorf("%w (run `weather configure <provider>` first)", err)
		}
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: c.cfg.HTTPTimeout,
	}
	provider, err := cred.BuildProvider(httpClient, c.logger)
	if err != nil {
		return nil, err
	}
	return weather.NewService(provider, c.logger), nil
}

func (c *cli) get(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	coords := fs.String("coords", "", "Look up current weather by \"lat,lon\" instead of a location name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := c.newService()
	if err != nil {
		return err
	}

	var w weather.Weather
	if *coords != "" {
		if fs.NArg() != 0 {
			return fmt.Errorf("%w: -coords cannot be combined with a location", errUsage)
		}
		lat, lon, err := parseCoords(*coords)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		w, err = svc.GetWeatherByCoordinates(ctx, lat, lon)
		if err != nil {
			return err
		}
		return render.Write(c.stdout, w)
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("%w: get takes a location and an optional date", errUsage)
	}

	date := "now"
	if fs.NArg() == 2 {
		date = fs.Arg(1)
	}
	when, err := weather.ParseWhen(date, c.cfg.Timezone)
	if err != nil {
		return err
	}

	w, err = svc.GetWeather(ctx, fs.Arg(0), when)
	if err != nil {
		return err
	}
	return render.Write(c.stdout, w)
}

func (c *cli) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	every := fs.Duration("every", c.cfg.WatchInterval, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: watch takes exactly one location", errUsage)
	}
	if *every < time.Second {
		return fmt.Errorf("%w: -every must be at least 1s", errUsage)
	}

	svc, err := c.newService()
	if err != nil {
		return err
	}

	sched := scheduler.New(fs.Arg(0), *every, c.cfg.HTTPTimeout, svc, c.stdout, c.logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	<-ctx.Done()
	return nil
}

func (c *cli) serve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	port := fs.String("port", c.cfg.Port, "Port to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := c.newService()
	if err != nil {
		return err
	}

	app := httpapi.NewApp(svc, c.cfg.Timezone, c.logger)

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("listening", zap.String("port", *port), zap.String("provider", svc.ProviderName()))
		errCh <- app.Listen(":" + *port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}

func parseCoords(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coords must look like \"lat,lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("invalid longitude %q", parts[1])
	}
	return lat, lon, nil
}
