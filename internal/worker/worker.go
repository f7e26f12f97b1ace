package worker

import (
	"context"
	"numbers-game/internal/service"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task is one unit of periodic work evaluated at now
type Task func(ctx context.Context, now time.Time) error

// PeriodicWorker runs a Task on a fixed interval until stopped
type PeriodicWorker struct {
	name     string
	task     Task
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewPeriodicWorker(name string, task Task, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		task:     task,
		interval: interval,
		now:      time.Now,
		logger:   logger.With().Str("worker", name).Logger(),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

// NewDrawCloser closes OPEN draws once their betting cutoff has passed
func NewDrawCloser(svc service.DrawService, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("draw-closer", func(ctx context.Context, now time.Time) error {
		_, err := svc.CloseDueDraws(ctx, now)
		return err
	}, interval, logger)
}

// NewAutoBetRunner places the bets owed by standing auto-bet configs
func NewAutoBetRunner(svc service.AutoBetService, interval time.Duration, logger zerolog.Logger) *PeriodicWorker {
	return NewPeriodicWorker("auto-bet", func(ctx context.Context, now time.Time) error {
		_, err := svc.RunCycle(ctx, now)
		return err
	}, interval, logger)
}

func (w *PeriodicWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running task")
				if err := w.task(ctx, w.now()); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run task")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop waits for an in-flight task to finish; calling it more than once is safe
func (w *PeriodicWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
