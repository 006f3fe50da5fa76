package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/config"
	"github.com/rangeland-tools/grazeplan/internal/service/planner"
	"github.com/rangeland-tools/grazeplan/pkg/clients/notify"
)

// Scheduler runs the periodic rotation review.
type Scheduler struct {
	cron     *cron.Cron
	planner  *planner.Service
	notifier notify.Client
	cfg      config.RotationConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. notifier may be nil when no
// webhook is configured; the review still runs and records plans.
func NewScheduler(cfg config.RotationConfig, plannerSvc *planner.Service, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		planner:  plannerSvc,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the rotation review job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runRotationReview); err != nil {
		s.logger.Error("failed to schedule rotation review", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runRotationReview() {
	s.logger.Info("running rotation review")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := s.planner.ReviewRotations(ctx)
	if err != nil {
		s.logger.Error("rotation review failed", zap.Error(err))
		return
	}
	if summary == "" {
		s.logger.Info("rotation review found nothing to plan")
		return
	}

	if s.notifier == nil {
		s.logger.Info("rotation review complete, no notifier configured")
		return
	}

	notification := notify.Notification{
		Title:   "Weekly rotation review",
		Message: summary,
	}
	if err := s.notifier.SendNotification(ctx, notification); err != nil {
		s.logger.Error("failed to send rotation summary", zap.Error(err))
	} else {
		s.logger.Info("rotation summary sent")
	}
}
