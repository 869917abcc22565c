// Package sheets exports billing reports to a spreadsheet webhook.
// The webhook is an Apps Script endpoint that appends rows to the
// finance team's sheet.
package sheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"jelantah/internal/core/ports"
	"jelantah/internal/pkg/errs"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// Exporter posts report payloads to the configured webhook URL.
type Exporter struct {
	client     *http.Client
	webhookURL string
}

// NewExporter creates an exporter for the given webhook URL.
func NewExporter(webhookURL string) (*Exporter, error) {
	if webhookURL == "" {
		return nil, errs.NewValueIsRequiredError("webhookURL")
	}

	return &Exporter{
		client:     &http.Client{Timeout: 30 * time.Second},
		webhookURL: webhookURL,
	}, nil
}

// ExportBillingReport posts the JSON-encoded report rows to the webhook.
func (e *Exporter) ExportBillingReport(ctx context.Context, payload []byte) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build export request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := e.client.Do(request)
	if err != nil {
		return fmt.Errorf("post billing report: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("post billing report: webhook responded %s", response.Status)
	}

	return nil
}
