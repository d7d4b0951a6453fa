package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StorefrontFacade exposes the subset of application functionality required by the sweeper.
type StorefrontFacade interface {
	SweepArchivedCartLines(ctx context.Context) (int64, error)
}

// CartSweeper periodically removes cart lines that reference archived products,
// so stale items never reach checkout.
type CartSweeper struct {
	facade StorefrontFacade
	period time.Duration
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartSweeper constructs the cart sweeper worker.
func NewCartSweeper(facade StorefrontFacade, period time.Duration, logger *slog.Logger) *CartSweeper {
	if period <= 0 {
		period = time.Minute
	}
	return &CartSweeper{
		facade: facade,
		period: period,
		logger: logger,
	}
}

// Start launches background sweeping.
func (s *CartSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *CartSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CartSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.period)
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

func (s *CartSweeper) sweep(ctx context.Context) {
	removed, err := s.facade.SweepArchivedCartLines(ctx)
	if err != nil {
		s.logger.Error("cart sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("swept archived products from carts", slog.Int64("removed", removed))
	}
}
