package prom_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/intel/forGoAsync/observe/prom"
)

func TestMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := prom.New(reg)

	m.TaskStarted()
	m.TaskStarted()
	m.TaskFinished(5*time.Millisecond, false)
	m.TaskFinished(3*time.Millisecond, true)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}

	want := map[string]float64{
		"forgoasync_sched_tasks_started_total":  2,
		"forgoasync_sched_tasks_finished_total": 2,
		"forgoasync_sched_tasks_panicked_total": 1,
		"forgoasync_sched_tasks_active":         0,
	}
	for _, f := range families {
		if v, ok := want[f.GetName()]; ok {
			metric := f.GetMetric()[0]
			got := metric.GetCounter().GetValue() + metric.GetGauge().GetValue()
			if got != v {
				t.Errorf("%s = %v, want %v", f.GetName(), got, v)
			}
			delete(want, f.GetName())
		}
	}
	for name := range want {
		t.Errorf("metric %s not gathered", name)
	}

	if got := testutil.CollectAndCount(reg, "forgoasync_sched_task_duration_seconds"); got != 1 {
		t.Errorf("expected the duration histogram to be registered, got %d", got)
	}
}

func TestActiveGaugeTracksInFlight(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := prom.New(reg)

	m.TaskStarted()
	m.TaskStarted()
	m.TaskFinished(time.Millisecond, false)

	const metadata = `
# HELP forgoasync_sched_tasks_active Number of scheduled functions currently executing.
# TYPE forgoasync_sched_tasks_active gauge
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(metadata+"forgoasync_sched_tasks_active 1\n"),
		"forgoasync_sched_tasks_active"); err != nil {
		t.Error(err)
	}
}

func TestNilRegistererSkipsRegistration(t *testing.T) {
	m := prom.New(nil)
	m.TaskStarted()
	m.TaskFinished(time.Millisecond, false)
}
