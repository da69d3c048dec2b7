package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type orderExpirer interface {
	CancelExpired(ctx context.Context) (int, error)
}

// Scheduler periodically cancels pending orders whose payment window
// has lapsed, releasing their reserved stock.
type Scheduler struct {
	orderService orderExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	orderService orderExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		orderService: orderService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.orderService.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired orders",
			logger.String("error", err.Error()),
		)
		return
	}

	if cancelled > 0 {
		s.logger.Info("expired orders swept",
			logger.Int("cancelled", cancelled),
		)
	}
}
