package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/render"
	"github.com/i474232898/weather-cli/internal/weather"
)

// Scheduler periodically fetches and prints current weather for one location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	location  string
	interval  time.Duration
	timeout   time.Duration
	logger    *zap.Logger

	mu  sync.Mutex
	out io.Writer
}

// New creates a new Scheduler.
func New(location string, interval, timeout time.Duration, service *weather.Service, out io.Writer, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		service:   service,
		location:  location,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
		out:       out,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("watch: fetch failed", zap.String("location", s.location), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce fetches current conditions and writes them, preceded by a timestamp header.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	w, err := s.service.GetWeather(ctx, s.location, weather.Now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.out, "--- %s ---\n", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return render.Write(s.out, w)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
