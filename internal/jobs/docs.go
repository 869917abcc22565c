// Package jobs provides scheduled background tasks for the pickup service.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated
// through JobManager:
//
//	jobManager := jobs.NewJobManager(billingReportHandler, exporter, "0 7 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// BillingExportJob rebuilds the billing report and delivers it to the
// finance spreadsheet webhook. Export failures are logged and retried on
// the next scheduled run; they never affect the serving path.
package jobs
