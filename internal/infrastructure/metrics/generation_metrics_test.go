package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGenerationMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGenerationMetrics(reg, Config{ServiceName: "test", Environment: "ci"})

	m.ObserveGeneration("mock", 2*time.Second, nil)
	m.ObserveGeneration("mock", time.Second, errors.New("boom"))
	m.ObserveValidation("mock", false, 9)
	m.ObserveValidation("mock", true, 0)

	if got := testutil.ToFloat64(m.generations.WithLabelValues("mock", "success")); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(m.generations.WithLabelValues("mock", "failure")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.validationFindings.WithLabelValues("mock")); got != 9 {
		t.Fatalf("expected 9 findings, got %v", got)
	}
	if got := testutil.ToFloat64(m.validations.WithLabelValues("mock", "true")); got != 1 {
		t.Fatalf("expected 1 valid result, got %v", got)
	}
}

func TestGenerationMetrics_NilSafe(t *testing.T) {
	var m *GenerationMetrics
	m.ObserveGeneration("mock", time.Second, nil)
	m.ObserveValidation("mock", true, 0)
}
