package sysloggen

import (
	"net/http"

	"github.com/go-log/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters of a run. A nil *Metrics records nothing.
type Metrics struct {
	sent    prometheus.Counter
	skipped prometheus.Counter
	failed  prometheus.Counter
	bytes   prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysloggen_messages_sent_total",
			Help: "Total number of syslog datagrams handed to the network",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysloggen_messages_skipped_total",
			Help: "Total number of sends skipped because of an invalid source address or socket failure",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysloggen_messages_failed_total",
			Help: "Total number of datagrams whose transmission failed",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysloggen_bytes_sent_total",
			Help: "Total number of payload bytes handed to the network",
		}),
	}
	reg.MustRegister(m.sent, m.skipped, m.failed, m.bytes)
	return m
}

// RecordSent counts one transmitted datagram of n bytes.
func (m *Metrics) RecordSent(n int) {
	if m == nil {
		return
	}
	m.sent.Inc()
	m.bytes.Add(float64(n))
}

// RecordSkipped counts one skipped send.
func (m *Metrics) RecordSkipped() {
	if m == nil {
		return
	}
	m.skipped.Inc()
}

// RecordFailed counts one failed transmission.
func (m *Metrics) RecordFailed() {
	if m == nil {
		return
	}
	m.failed.Inc()
}

// ServeMetrics serves the metrics of g on addr under /metrics. It blocks.
func ServeMetrics(addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	log.Logf("[metrics] listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
