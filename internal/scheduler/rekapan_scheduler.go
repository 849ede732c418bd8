package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
)

// RekapanScheduler writes periodic rekapan snapshots into the export directory
type RekapanScheduler struct {
	rekapanService service.RekapanService
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	exportDir      string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRekapanScheduler creates a new rekapan scheduler
func NewRekapanScheduler(rekapanService service.RekapanService, logger *logger.Logger, cronExpression, exportDir string) *RekapanScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())
	ctx, cancel := context.WithCancel(context.Background())

	return &RekapanScheduler{
		rekapanService: rekapanService,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		exportDir:      exportDir,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start schedules the snapshot job and starts the cron runner
func (s *RekapanScheduler) Start() error {
	s.logger.Info("Starting rekapan scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling rekapan snapshot job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.saveSnapshot); err != nil {
		return fmt.Errorf("failed to schedule rekapan snapshot job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Rekapan scheduler started successfully")
	return nil
}

// Stop cancels a running snapshot and waits for it to return
func (s *RekapanScheduler) Stop() {
	s.logger.Info("Stopping rekapan scheduler...")
	s.cancel()
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Rekapan scheduler stopped successfully")
}

// saveSnapshot is the scheduled job. History rows are written by the service.
func (s *RekapanScheduler) saveSnapshot() {
	started := time.Now()
	s.logger.WithField("export_dir", s.exportDir).Info("Starting scheduled rekapan snapshot...")

	path, err := s.rekapanService.SaveSnapshot(s.ctx, s.exportDir)
	if err != nil {
		s.logger.WithError(err).Error("Failed to save rekapan snapshot")
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"path":     path,
		"duration": time.Since(started).String(),
	}).Info("Scheduled rekapan snapshot completed")
}
