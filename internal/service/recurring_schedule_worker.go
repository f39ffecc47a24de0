package service

import (
	"context"
	"sync"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// RecurringScheduleWorker is a background worker that moves the next date of
// every recurring expense past today. Aggregation never reads NextDate; it
// only orders the recurring list and tells the client what is due next.
type RecurringScheduleWorker struct {
	events
	recurringRepo domain.RecurringRepository
	opts          Options
	logger        zerolog.Logger
	interval      time.Duration
	batchSize     int
	stopCh        chan struct{}
	doneCh        chan struct{}
	mu            sync.Mutex
	running       bool
}

// RecurringScheduleWorkerConfig holds configuration for the schedule worker
type RecurringScheduleWorkerConfig struct {
	Interval  time.Duration // How often to advance overdue next dates
	BatchSize int           // Rows loaded per query
}

// DefaultRecurringScheduleWorkerConfig returns sensible defaults
func DefaultRecurringScheduleWorkerConfig() RecurringScheduleWorkerConfig {
	return RecurringScheduleWorkerConfig{
		Interval:  time.Hour,
		BatchSize: 200,
	}
}

// NewRecurringScheduleWorker creates a new schedule worker
func NewRecurringScheduleWorker(
	recurringRepo domain.RecurringRepository,
	opts Options,
	logger zerolog.Logger,
	config RecurringScheduleWorkerConfig,
) *RecurringScheduleWorker {
	defaults := DefaultRecurringScheduleWorkerConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}

	return &RecurringScheduleWorker{
		recurringRepo: recurringRepo,
		opts:          opts.withDefaults(),
		logger:        logger.With().Str("component", "recurring_scheduler").Logger(),
		interval:      config.Interval,
		batchSize:     config.BatchSize,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start begins the background schedule sync
func (w *RecurringScheduleWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting recurring schedule worker")

	go w.run(ctx)
}

// Stop gracefully stops the worker and waits for an in-flight sync
func (w *RecurringScheduleWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping recurring schedule worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Recurring schedule worker stopped")
}

// IsRunning returns whether the worker is currently running
func (w *RecurringScheduleWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *RecurringScheduleWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	// Run immediately on startup
	w.sync(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sync(ctx)
		}
	}
}

func (w *RecurringScheduleWorker) sync(ctx context.Context) {
	startTime := time.Now()
	advanced, err := w.SyncDue(ctx)
	if err != nil {
		w.logger.Error().Err(err).Int("advanced", advanced).Msg("Recurring schedule sync failed")
		return
	}
	w.logger.Info().
		Int("advanced", advanced).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed recurring schedule sync")
}

// SyncDue advances every recurring expense whose next date is before today
// and returns how many were moved. A row that fails to update is logged and
// left for the next run.
func (w *RecurringScheduleWorker) SyncDue(ctx context.Context) (int, error) {
	now := w.opts.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, w.opts.Location)

	advanced := 0
	for {
		due, err := w.recurringRepo.ListDue(ctx, today, w.batchSize)
		if err != nil {
			return advanced, err
		}

		failed := 0
		for _, rt := range due {
			select {
			case <-ctx.Done():
				return advanced, ctx.Err()
			case <-w.stopCh:
				return advanced, nil
			default:
			}

			next := aggregation.NextOccurrence(rt.StartDate, rt.Frequency, today)
			if err := w.advance(ctx, rt, next, now); err != nil {
				w.logger.Error().
					Err(err).
					Str("recurring_id", rt.ID.String()).
					Msg("Failed to advance recurring expense")
				failed++
				continue
			}
			advanced++
		}

		// Failed rows stay due; stop instead of reloading them forever
		if len(due) < w.batchSize || failed > 0 {
			return advanced, nil
		}
	}
}

func (w *RecurringScheduleWorker) advance(ctx context.Context, rt *domain.RecurringExpense, next, now time.Time) error {
	wctx, cancel := w.opts.writeContext(ctx)
	defer cancel()

	if err := w.recurringRepo.UpdateSchedule(wctx, rt.ID, next, now); err != nil {
		return err
	}

	w.logger.Debug().
		Str("recurring_id", rt.ID.String()).
		Time("next_date", next).
		Msg("Advanced recurring expense")

	updated := *rt
	updated.NextDate = next
	processed := now
	updated.LastProcessed = &processed
	w.publishEvent(rt.UserID, websocket.RecurringUpdated(&updated))
	return nil
}
