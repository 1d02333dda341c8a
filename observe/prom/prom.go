// Package prom provides a Prometheus-backed scheduler observer.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements observe.Observer with Prometheus collectors.
type Metrics struct {
	active   prometheus.Gauge
	started  prometheus.Counter
	finished prometheus.Counter
	panicked prometheus.Counter
	duration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forgoasync",
			Subsystem: "sched",
			Name:      "tasks_active",
			Help:      "Number of scheduled functions currently executing.",
		}),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forgoasync",
			Subsystem: "sched",
			Name:      "tasks_started_total",
			Help:      "Total number of scheduled functions started.",
		}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forgoasync",
			Subsystem: "sched",
			Name:      "tasks_finished_total",
			Help:      "Total number of scheduled functions finished.",
		}),
		panicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forgoasync",
			Subsystem: "sched",
			Name:      "tasks_panicked_total",
			Help:      "Total number of scheduled functions that panicked.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forgoasync",
			Subsystem: "sched",
			Name:      "task_duration_seconds",
			Help:      "Execution time of scheduled functions.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.active, m.started, m.finished, m.panicked, m.duration)
	}
	return m
}

func (m *Metrics) TaskStarted() {
	m.active.Inc()
	m.started.Inc()
}

func (m *Metrics) TaskFinished(d time.Duration, panicked bool) {
	m.active.Dec()
	m.finished.Inc()
	if panicked {
		m.panicked.Inc()
	}
	m.duration.Observe(d.Seconds())
}
