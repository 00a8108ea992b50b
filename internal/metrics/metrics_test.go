package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := New()
	c.ObserveBatch("success", 120*time.Millisecond)
	c.ObserveBatch("partial_success", time.Second)
	c.ObserveBatch("success", 10*time.Millisecond)
	c.ObserveRecord("Link", "created")
	c.ObserveRecord("Link", "created")
	c.ObserveRecord("BridgeInventory", "failed")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.batchesTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.recordsTotal.WithLabelValues("Link", "created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.recordsTotal.WithLabelValues("BridgeInventory", "failed")))
}

func TestHandler(t *testing.T) {
	c := New()
	c.ObserveRecord("Link", "updated")

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `pkrms_upload_records_total{entity="Link",outcome="updated"} 1`)
}
