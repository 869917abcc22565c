package sheets_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jelantah/internal/adapters/out/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExporter_EmptyURL_ReturnsError(t *testing.T) {
	_, err := sheets.NewExporter("")

	assert.Error(t, err)
}

func TestExportBillingReport_PostsPayloadAsJSON(t *testing.T) {
	var (
		receivedBody        []byte
		receivedContentType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedContentType = r.Header.Get("Content-Type")
		receivedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exporter, err := sheets.NewExporter(server.URL)
	require.NoError(t, err)

	payload := []byte(`[{"order_id":"abc","customer_payout":154000}]`)
	err = exporter.ExportBillingReport(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "application/json", receivedContentType)
	assert.Equal(t, payload, receivedBody)
}

func TestExportBillingReport_WebhookFailure_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	exporter, err := sheets.NewExporter(server.URL)
	require.NoError(t, err)

	err = exporter.ExportBillingReport(context.Background(), []byte(`[]`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
