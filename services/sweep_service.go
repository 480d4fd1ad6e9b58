package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"squad-pickem-go/logging"
)

// SweepService runs the scheduled settlement sweep. It is one of several
// equivalent settlement triggers (the others being the admin HTTP action
// and operator scripts); idempotence makes overlapping runs safe.
type SweepService struct {
	settlement *SettlementService
	season     int
	schedule   string
	cron       *cron.Cron
	logger     *logging.Logger
}

// NewSweepService creates a sweep over the given season with a cron
// schedule such as "@every 5m"
func NewSweepService(settlement *SettlementService, season int, schedule string) *SweepService {
	return &SweepService{
		settlement: settlement,
		season:     season,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logging.WithPrefix("Sweep"),
	}
}

// Start registers the sweep job and starts the scheduler
func (s *SweepService) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.run)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Infof("Settlement sweep scheduled (%s) for season %d", s.schedule, s.season)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *SweepService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Settlement sweep stopped")
}

// RunNow executes a sweep immediately, outside the schedule
func (s *SweepService) RunNow(ctx context.Context) error {
	return s.settlement.SettleCompletedGames(ctx, s.season)
}

func (s *SweepService) run() {
	if err := s.settlement.SettleCompletedGames(context.Background(), s.season); err != nil {
		s.logger.Errorf("Sweep failed: %v", err)
	}
}
