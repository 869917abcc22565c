package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"jelantah/internal/core/application/usecases/queries"
	"jelantah/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// BillingExportJob periodically pushes the billing report to the
// finance spreadsheet webhook so the office never pays from a stale
// sheet.
type BillingExportJob struct {
	handler  queries.GetBillingReportQueryHandler
	exporter ports.ReportExporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBillingExportJob creates an export job on the given cron schedule.
func NewBillingExportJob(
	handler queries.GetBillingReportQueryHandler,
	exporter ports.ReportExporter,
	schedule string,
	logger *slog.Logger,
) *BillingExportJob {
	return &BillingExportJob{
		handler:  handler,
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "billing_export_job"),
	}
}

// Start schedules the export job.
func (j *BillingExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Billing export job started", "schedule", j.schedule)
	return nil
}

// Stop stops the export job.
func (j *BillingExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Billing export job stopped")
}

func (j *BillingExportJob) run() {
	ctx := context.Background()

	report, err := j.handler.Handle(ctx, queries.NewGetBillingReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Billing export job failed to build report", "error", err)
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		j.logger.ErrorContext(ctx, "Billing export job failed to encode report", "error", err)
		return
	}

	if err = j.exporter.ExportBillingReport(ctx, payload); err != nil {
		j.logger.ErrorContext(ctx, "Billing export job failed to deliver report", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Billing report exported", "rows", len(report))
}
