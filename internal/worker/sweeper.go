package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ReservationCompleter exposes the subset of application functionality
// required by the sweeper.
type ReservationCompleter interface {
	CompletePastReservations(ctx context.Context, limit int) (int64, error)
}

// ReservationSweeper periodically marks confirmed reservations whose time
// slot has passed as completed.
type ReservationSweeper struct {
	facade    ReservationCompleter
	interval  time.Duration
	batchSize int
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReservationSweeper constructs the background sweeper.
func NewReservationSweeper(facade ReservationCompleter, interval time.Duration, batchSize int, logger *slog.Logger) *ReservationSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ReservationSweeper{
		facade:    facade,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Start launches background sweeping.
func (s *ReservationSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *ReservationSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ReservationSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReservationSweeper) sweep(ctx context.Context) {
	completed, err := s.facade.CompletePastReservations(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("reservation sweep failed", slog.String("error", err.Error()))
		return
	}
	if completed > 0 {
		s.logger.Info("completed past reservations", slog.Int64("count", completed))
	}
}
