package jobs

import (
	"fmt"
	"log/slog"

	"jelantah/internal/core/application/usecases/queries"
	"jelantah/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	billingExportJob *BillingExportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	billingReportHandler queries.GetBillingReportQueryHandler,
	exporter ports.ReportExporter,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		billingExportJob: NewBillingExportJob(billingReportHandler, exporter, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.billingExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start billing export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.billingExportJob.Stop()
}
