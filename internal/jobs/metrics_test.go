package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metric:
		for _, m := range family.GetMetric() {
			for key, want := range labels {
				found := false
				for _, pair := range m.GetLabel() {
					if pair.GetName() == key && pair.GetValue() == want {
						found = true
						break
					}
				}
				if !found {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestTrackerRecordsOutcome(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	if err := m.Track("ledger:integrity").End(nil); err != nil {
		t.Fatalf("End(nil) = %v", err)
	}
	boom := errors.New("boom")
	if err := m.Track("ledger:integrity").End(boom); !errors.Is(err, boom) {
		t.Fatalf("End must return the error untouched, got %v", err)
	}

	success := counterValue(t, registry, "meridian_jobs_total", map[string]string{"job": "ledger:integrity", "status": "success"})
	failure := counterValue(t, registry, "meridian_jobs_total", map[string]string{"job": "ledger:integrity", "status": "failure"})
	failures := counterValue(t, registry, "meridian_jobs_failures_total", map[string]string{"job": "ledger:integrity"})
	if success != 1 || failure != 1 || failures != 1 {
		t.Fatalf("runs success/failure = %v/%v, failures = %v, want 1/1/1", success, failure, failures)
	}
}

func TestAddImbalance(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.AddImbalance()
	m.AddImbalance()

	if got := counterValue(t, registry, "meridian_ledger_imbalances_total", nil); got != 2 {
		t.Fatalf("imbalances = %v, want 2", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.AddImbalance()
	if err := m.Track("anything").End(nil); err != nil {
		t.Fatalf("End = %v", err)
	}
}
