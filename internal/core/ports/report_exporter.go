package ports

import "context"

// ReportExporter delivers a serialized billing report to an external
// bookkeeping destination.
type ReportExporter interface {
	// ExportBillingReport pushes the JSON-encoded report rows.
	ExportBillingReport(ctx context.Context, payload []byte) error
}
