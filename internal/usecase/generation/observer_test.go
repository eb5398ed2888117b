package generation

import (
	"context"
	"testing"

	"remodeling_proposals/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnValidation(context.Background(), ValidationEvent{Model: "mock", ProposalID: "p-1", Result: ValidationResult{Valid: true}})
	obs.OnValidation(context.Background(), ValidationEvent{
		Model:      "gpt-4",
		ProposalID: "p-2",
		Result:     ValidationResult{Errors: []string{"Missing cost breakdown table"}},
	})

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
	fields := warnings[0].ContextMap()
	if fields["proposal_id"] != "p-2" || fields["finding_count"] != int64(1) {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestMultiObserver(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	reg := prometheus.NewRegistry()
	m := NewMultiObserver(a, nil, b, NewMetricsObserver(metrics.NewGenerationMetrics(reg, metrics.Config{})))

	m.OnValidation(context.Background(), ValidationEvent{Model: "mock"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("expected fan out to both observers")
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "proposal_structure_validations_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected validation counter to be exported")
	}
}
