package metrics

import (
	"testing"
)

// gatherValue returns the current value of a registered metric, summed
// across all of its label combinations.
func gatherValue(t *testing.T, m *Metrics, name string) float64 {
	t.Helper()

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				total += float64(metric.GetHistogram().GetSampleCount())
			}
		}
		return total
	}
	t.Fatalf("metric %q not found in registry", name)
	return 0
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterCounter("requests_total", "Total number of requests")

	m.IncCounter("requests_total")
	m.IncCounter("requests_total")
	m.AddCounter("requests_total", 3)

	if got := gatherValue(t, m, "requests_total"); got != 5 {
		t.Errorf("counter value = %v, want 5", got)
	}

	// unregistered names are ignored
	m.IncCounter("unknown_total")
	m.AddCounter("unknown_total", 10)
}

func TestMetrics_CounterVec(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterCounterVec("http_requests_total", "Total number of HTTP requests", []string{"method", "path"})

	m.IncCounterVec("http_requests_total", "GET", "/api/practicas")
	m.IncCounterVec("http_requests_total", "GET", "/api/practicas")
	m.IncCounterVec("http_requests_total", "POST", "/api/users")

	if got := gatherValue(t, m, "http_requests_total"); got != 3 {
		t.Errorf("counter vec total = %v, want 3", got)
	}

	m.IncCounterVec("unknown_total", "GET", "/")
}

func TestMetrics_Histogram(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterHistogram("request_duration_seconds", "Request duration", []float64{0.01, 0.1, 1})

	m.ObserveHistogram("request_duration_seconds", 0.05)
	m.ObserveHistogram("request_duration_seconds", 0.5)

	if got := gatherValue(t, m, "request_duration_seconds"); got != 2 {
		t.Errorf("histogram sample count = %v, want 2", got)
	}

	m.ObserveHistogram("unknown_seconds", 1)
}

func TestMetrics_Gauges(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterGauge("active_connections", "Number of active connections")

	m.IncGauge("active_connections")
	m.IncGauge("active_connections")
	m.IncGauge("active_connections")
	m.DecGauge("active_connections")

	if got := gatherValue(t, m, "active_connections"); got != 2 {
		t.Errorf("gauge value = %v, want 2", got)
	}

	m.SetGauge("active_connections", 7)
	if got := gatherValue(t, m, "active_connections"); got != 7 {
		t.Errorf("gauge value after Set = %v, want 7", got)
	}

	m.IncGauge("unknown_gauge")
	m.DecGauge("unknown_gauge")
	m.SetGauge("unknown_gauge", 1)
}

func TestMetrics_GetRegistry(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	if m.GetRegistry() != m.Registry {
		t.Error("GetRegistry() did not return the underlying registry")
	}
}
