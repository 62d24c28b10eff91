package exporter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronobench/chrono/pkg/chrono"
	"github.com/chronobench/chrono/pkg/logging"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	if !chrono.ProcessReal.Supported() {
		t.Skip("process clock not supported on this platform")
	}
	e, err := New(logging.New(logging.ERROR, false))
	require.NoError(t, err)
	return e
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestExporter(t)
	server := httptest.NewServer(e.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	parser := expfmt.NewTextParser(model.LegacyValidation)
	families, err := parser.TextToMetricFamilies(resp.Body)
	require.NoError(t, err)

	for _, name := range []string{
		"chrono_process_real_seconds",
		"chrono_process_user_seconds",
		"chrono_process_system_seconds",
		"chrono_process_cpu_utilization",
		"chrono_exporter_scrapes_total",
		"chrono_exporter_uptime_seconds",
	} {
		assert.Contains(t, families, name)
	}

	real := families["chrono_process_real_seconds"].GetMetric()[0].GetGauge().GetValue()
	assert.GreaterOrEqual(t, real, 0.0)
}

func TestScrapeCounterAdvances(t *testing.T) {
	e := newTestExporter(t)
	server := httptest.NewServer(e.Router())
	defer server.Close()

	var last float64
	for i := 0; i < 2; i++ {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)

		parser := expfmt.NewTextParser(model.LegacyValidation)
		families, err := parser.TextToMetricFamilies(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		got := families["chrono_exporter_scrapes_total"].GetMetric()[0].GetCounter().GetValue()
		assert.Greater(t, got, last)
		last = got
	}
}

func TestHealthz(t *testing.T) {
	e := newTestExporter(t)
	server := httptest.NewServer(e.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
