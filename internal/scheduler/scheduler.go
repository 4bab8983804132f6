package scheduler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/weather-bot/internal/weather"
)

// maxConcurrentLookups bounds how many locations are queried at once.
const maxConcurrentLookups = 4

// Scheduler periodically runs the weather command for configured locations
// and records the answers as reports.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	store     weather.ReportStore
	locations []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []string, interval time.Duration, service *weather.Service, store weather.ReportStore) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		store:     store,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no report locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		log.Printf("scheduler: report interval %s is under a minute; using 15m", s.interval)
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce queries every configured location and saves one report each.
func (s *Scheduler) RunOnce(ctx context.Context) {
	log.Println("scheduler: running weather report job")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, loc := range s.locations {
		loc := strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		g.Go(func() error {
			lines := s.service.Handle(gCtx, weather.Params(strings.Fields(loc)))
			s.store.SaveReport(weather.Report{
				ID:        uuid.NewString(),
				Location:  loc,
				Provider:  s.service.ProviderName(),
				Lines:     lines,
				CreatedAt: time.Now().UTC(),
			})
			return nil
		})
	}

	// Lookups never fail; failures are already rendered into the report lines.
	_ = g.Wait()
	log.Println("scheduler: completed weather report job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
