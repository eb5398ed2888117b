// Package generation drives text-generation backends to produce proposals.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/infrastructure/metrics"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 90 * time.Second

// ProposalGenerator implements the generation contract on top of any
// ITextGenerator. One invocation moves through
// idle -> prompt_assembled -> provider_invoked -> response_received -> validated -> returned,
// or ends in failed.
type ProposalGenerator struct {
	backend  interfaces.ITextGenerator
	catalog  interfaces.ICatalogRepository
	engine   *pricing.Engine
	observer ValidationObserver
	metrics  *metrics.GenerationMetrics
	logger   *zap.Logger
	timeout  time.Duration
	newID    func() string
}

var _ interfaces.IProposalGenerator = (*ProposalGenerator)(nil)

type GeneratorOption func(*ProposalGenerator)

func WithObserver(o ValidationObserver) GeneratorOption {
	return func(g *ProposalGenerator) { g.observer = o }
}

func WithMetrics(m *metrics.GenerationMetrics) GeneratorOption {
	return func(g *ProposalGenerator) { g.metrics = m }
}

func WithLogger(l *zap.Logger) GeneratorOption {
	return func(g *ProposalGenerator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTimeout sets the backend call timeout; zero disables it.
func WithTimeout(d time.Duration) GeneratorOption {
	return func(g *ProposalGenerator) { g.timeout = d }
}

func WithIDGenerator(fn func() string) GeneratorOption {
	return func(g *ProposalGenerator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

func NewProposalGenerator(
	backend interfaces.ITextGenerator,
	catalog interfaces.ICatalogRepository,
	engine *pricing.Engine,
	opts ...GeneratorOption,
) *ProposalGenerator {
	g := &ProposalGenerator{
		backend: backend,
		catalog: catalog,
		engine:  engine,
		logger:  zap.NewNop(),
		timeout: DefaultTimeout,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.observer == nil {
		g.observer = NewLogObserver(g.logger)
	}
	return g
}

func (g *ProposalGenerator) ModelName() string {
	return g.backend.Model()
}

func (g *ProposalGenerator) IsAvailable() bool {
	return g.backend.Available()
}

func (g *ProposalGenerator) GenerateProposal(ctx context.Context, req entities.GenerationRequest) (entities.Proposal, error) {
	model := g.backend.Model()
	log := g.logger.With(zap.String("model", model))

	services, materials, err := g.resolveCatalog(ctx, req)
	if err != nil {
		log.Error("proposal generation failed", zap.String("state", "failed"), zap.Error(err))
		return entities.Proposal{}, err
	}
	total := pricing.AggregateTotal(materials, services)

	prompt := buildPrompt(promptInput{req: req, materials: materials, services: services, total: total})
	log.Debug("prompt assembled",
		zap.String("state", "prompt_assembled"),
		zap.Int("service_count", len(services)),
		zap.Int("material_count", len(materials)),
		zap.String("total_cost", pricing.Format(total)),
	)

	text, err := g.complete(ctx, prompt)
	if err != nil {
		log.Error("proposal generation failed", zap.String("state", "failed"), zap.Error(err))
		return entities.Proposal{}, err
	}
	log.Debug("response received", zap.String("state", "response_received"), zap.Int("length", len(text)))

	id := g.newID()
	result := ValidateStructure(text)
	g.observer.OnValidation(ctx, ValidationEvent{
		Model:      model,
		ProposalID: id,
		Result:     result,
		Timestamp:  g.engine.Now(),
	})
	log.Debug("response validated", zap.String("state", "validated"), zap.Bool("valid", result.Valid))

	p := g.assemble(id, model, req, services, text, total)
	log.Info("proposal generated",
		zap.String("state", "returned"),
		zap.String("proposal_id", p.ID),
		zap.String("total_cost", pricing.Format(p.TotalCost)),
	)
	return p, nil
}

// resolveCatalog loads and prices the requested services and their
// materials. Services are priced without their owned materials since those
// are priced and summed separately.
func (g *ProposalGenerator) resolveCatalog(ctx context.Context, req entities.GenerationRequest) ([]entities.Service, []entities.Material, error) {
	found, err := g.catalog.ServicesByNames(ctx, req.RequestedServices)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve services: %w", err)
	}
	if len(found) < len(req.RequestedServices) {
		g.logger.Debug("some requested services are not in the catalog",
			zap.Strings("requested", req.RequestedServices),
			zap.Int("found", len(found)),
		)
	}

	ids := make([]string, 0, len(found))
	services := make([]entities.Service, 0, len(found))
	for _, s := range found {
		ids = append(ids, s.ID)
		s.RequiredMaterials = nil
		services = append(services, g.engine.PriceService(s, req.Region))
	}

	var materials []entities.Material
	if len(ids) > 0 {
		owned, err := g.catalog.MaterialsForServices(ctx, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve materials: %w", err)
		}
		materials = make([]entities.Material, 0, len(owned))
		for _, m := range owned {
			materials = append(materials, g.engine.PriceMaterial(m, req.Region))
		}
	}
	return services, materials, nil
}

func (g *ProposalGenerator) complete(ctx context.Context, prompt string) (string, error) {
	model := g.backend.Model()
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.Debug("invoking provider", zap.String("state", "provider_invoked"), zap.String("model", model))
	start := time.Now()
	text, err := g.backend.Complete(callCtx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyGeneration
	}
	g.metrics.ObserveGeneration(model, time.Since(start), err)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return "", newGenerationError(model, err)
	}

	text = stripCodeFences(text)
	if text == "" {
		return "", newGenerationError(model, ErrEmptyGeneration)
	}
	return text, nil
}

func (g *ProposalGenerator) assemble(
	id, model string,
	req entities.GenerationRequest,
	services []entities.Service,
	body string,
	total decimal.Decimal,
) entities.Proposal {
	now := g.engine.Now()
	validUntil := now.Add(entities.ProposalValidity)

	var (
		permits  []string
		names    []string
		duration int
	)
	for _, s := range services {
		names = append(names, s.Name)
		duration += s.EstimatedDuration
		if s.RequiresPermit {
			permits = append(permits, s.Name+" permit")
		}
	}

	p := entities.Proposal{
		ID:                id,
		PropertyType:      req.PropertyType,
		PropertySize:      req.PropertySize,
		Region:            req.Region,
		Budget:            req.Budget,
		RequestedServices: append([]string(nil), req.RequestedServices...),
		Body:              body,
		Status:            entities.ProposalStatusDraft,
		Model:             model,
		TotalCost:         pricing.Round(total),
		CreatedAt:         now,
		ValidUntil:        &validUntil,
		ClientName:        req.ClientName,
		SiteAnalysis:      req.SiteAnalysis,
		ProjectScope:      strings.Join(names, ", "),
		RequiredPermits:   permits,
	}
	if duration > 0 {
		d := decimal.NewFromInt(int64(duration))
		p.EstimatedDuration = &d
	}
	return p
}
