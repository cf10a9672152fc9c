package scheduler

import (
	"context"
	"time"

	"homework_status_bot/internal/app" // For DigestService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestScheduler runs the daily digest job on a cron spec.
type DigestScheduler struct {
	cronEngine    *cron.Cron
	statusService app.DigestService
	logger        *logrus.Entry
	cronSpec      string
}

func NewDigestScheduler(
	statusService app.DigestService,
	logger *logrus.Entry,
	cronSpec string, // e.g. "0 9 * * *" (9:00 AM daily); empty disables the job
) *DigestScheduler {
	return &DigestScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		statusService: statusService,
		logger:        logger,
		cronSpec:      cronSpec,
	}
}

func (s *DigestScheduler) Start() {
	if s.cronSpec == "" {
		s.logger.Info("Daily digest disabled (empty cron spec)")
		return
	}

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for daily digest")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := s.statusService.SendDailyDigest(ctx); err != nil {
			s.logger.WithError(err).Error("Daily digest failed")
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add daily digest cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Digest scheduler started")
}

func (s *DigestScheduler) Stop() {
	s.logger.Info("Stopping digest scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Digest scheduler gracefully stopped")
}
