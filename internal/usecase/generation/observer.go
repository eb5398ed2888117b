package generation

import (
	"context"
	"time"

	"remodeling_proposals/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

// ValidationEvent is emitted once per generated document.
type ValidationEvent struct {
	Model      string
	ProposalID string
	Result     ValidationResult
	Timestamp  time.Time
}

// ValidationObserver receives structural validation results.
type ValidationObserver interface {
	OnValidation(ctx context.Context, event ValidationEvent)
}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	observers []ValidationObserver
}

// NewMultiObserver forwards events to all non-nil observers.
func NewMultiObserver(observers ...ValidationObserver) *MultiObserver {
	filtered := make([]ValidationObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func (m *MultiObserver) OnValidation(ctx context.Context, event ValidationEvent) {
	for _, obs := range m.observers {
		obs.OnValidation(ctx, event)
	}
}

// LogObserver logs findings as warnings.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnValidation(_ context.Context, event ValidationEvent) {
	if event.Result.Valid {
		o.logger.Debug("generated proposal passed structural validation",
			zap.String("model", event.Model),
			zap.String("proposal_id", event.ProposalID),
		)
		return
	}
	o.logger.Warn("generated proposal failed structural validation",
		zap.String("model", event.Model),
		zap.String("proposal_id", event.ProposalID),
		zap.Int("finding_count", len(event.Result.Errors)),
		zap.Strings("findings", event.Result.Errors),
	)
}

// MetricsObserver counts validation results.
type MetricsObserver struct {
	metrics *metrics.GenerationMetrics
}

func NewMetricsObserver(m *metrics.GenerationMetrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) OnValidation(_ context.Context, event ValidationEvent) {
	o.metrics.ObserveValidation(event.Model, event.Result.Valid, len(event.Result.Errors))
}
