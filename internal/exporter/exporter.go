// Package exporter serves the process CPU clocks as Prometheus metrics. The
// gauges are refreshed from one combined clock query per scrape, so real,
// user, and system always describe the same instant.
package exporter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/chronobench/chrono/pkg/chrono"
	"github.com/chronobench/chrono/pkg/logging"
)

// Exporter exports the composite process clock at /metrics
type Exporter struct {
	log       *logging.Logger
	startTime time.Time
	baseline  chrono.ProcessTimes

	registry    *promclient.Registry
	real        promclient.Gauge
	user        promclient.Gauge
	system      promclient.Gauge
	utilization promclient.Gauge
	scrapes     promclient.Counter
}

// New snapshots the process clocks as the baseline and registers the gauges.
// Fails if the platform has no process CPU clock.
func New(log *logging.Logger) (*Exporter, error) {
	baseline, err := chrono.ProcessNow()
	if err != nil {
		return nil, err
	}

	e := &Exporter{
		log:       log,
		startTime: time.Now(),
		baseline:  baseline,
		registry:  promclient.NewRegistry(),
		real: promclient.NewGauge(promclient.GaugeOpts{
			Name: "chrono_process_real_seconds",
			Help: "Wall time elapsed since the exporter started",
		}),
		user: promclient.NewGauge(promclient.GaugeOpts{
			Name: "chrono_process_user_seconds",
			Help: "User CPU time consumed by the process since the exporter started",
		}),
		system: promclient.NewGauge(promclient.GaugeOpts{
			Name: "chrono_process_system_seconds",
			Help: "System CPU time consumed by the process since the exporter started",
		}),
		utilization: promclient.NewGauge(promclient.GaugeOpts{
			Name: "chrono_process_cpu_utilization",
			Help: "(user+system)/real since the exporter started; above 1.0 on parallel workloads",
		}),
		scrapes: promclient.NewCounter(promclient.CounterOpts{
			Name: "chrono_exporter_scrapes_total",
			Help: "Total number of metric scrapes served",
		}),
	}

	e.registry.MustRegister(e.real, e.user, e.system, e.utilization, e.scrapes)
	return e, nil
}

// ServeHTTP serves Prometheus-compatible metrics at /metrics
func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.scrapes.Inc()

	now, err := chrono.ProcessNow()
	if err != nil {
		e.log.Error("process clock query failed", map[string]interface{}{"error": err.Error()})
		http.Error(w, fmt.Sprintf("Error sampling process clocks: %v", err), http.StatusInternalServerError)
		return
	}
	delta := now.Sub(e.baseline)

	e.real.Set(delta.Real.Seconds())
	e.user.Set(delta.User.Seconds())
	e.system.Set(delta.System.Seconds())
	e.utilization.Set(delta.Utilization())

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	fmt.Fprintf(w, "# HELP chrono_exporter_uptime_seconds Time since exporter started\n")
	fmt.Fprintf(w, "# TYPE chrono_exporter_uptime_seconds gauge\n")
	fmt.Fprintf(w, "chrono_exporter_uptime_seconds %.0f\n\n", time.Since(e.startTime).Seconds())

	families, err := e.registry.Gather()
	if err != nil {
		fmt.Fprintf(w, "# Error gathering Prometheus metrics: %v\n", err)
		return
	}
	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := encoder.Encode(mf); err != nil {
			fmt.Fprintf(w, "# Error encoding metric %s: %v\n", mf.GetName(), err)
		}
	}
}

// Router returns the HTTP routes for the exporter
func (e *Exporter) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", e).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	return r
}

// Serve blocks serving the exporter on the given address
func (e *Exporter) Serve(addr string) error {
	e.log.Info("exporter listening", map[string]interface{}{"addr": addr})
	server := &http.Server{
		Addr:         addr,
		Handler:      e.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
