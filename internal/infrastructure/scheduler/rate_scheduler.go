// Package scheduler runs the periodic exchange-rate refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/fredriick/Electrify-sub009/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule refreshes rates four times a day
const DefaultSchedule = "@every 6h"

const refreshTimeout = time.Minute

// Refresher pulls fresh exchange rates into storage
type Refresher interface {
	Refresh(ctx context.Context) ([]*currency.ExchangeRate, error)
}

// RateScheduler triggers Refresher on a cron schedule
type RateScheduler struct {
	cron      *cron.Cron
	refresher Refresher
	logger    logger.Logger
}

// NewRateScheduler parses schedule (standard 5-field cron or a descriptor such as "@every 1h")
func NewRateScheduler(schedule string, refresher Refresher, logger logger.Logger) (*RateScheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &RateScheduler{
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		refresher: refresher,
		logger:    logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Run starts the schedule and blocks until ctx is cancelled and the running refresh has finished
func (s *RateScheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting exchange rate scheduler")
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("Stopped exchange rate scheduler")
	return nil
}

func (s *RateScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	rates, err := s.refresher.Refresh(ctx)
	metrics.RecordRateRefresh(err == nil)
	if err != nil {
		s.logger.Error("Scheduled exchange rate refresh failed: ", err)
		return
	}
	s.logger.Info("Scheduled exchange rate refresh stored ", len(rates), " rates")
}
