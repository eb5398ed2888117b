package generation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"remodeling_proposals/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Family is the closed set of generator backends.
type Family string

const (
	FamilyOpenAI Family = "openai"
	FamilyLocal  Family = "local"
	FamilyMock   Family = "mock"
)

var modelFamilies = map[string]Family{
	"gpt-4":         FamilyOpenAI,
	"gpt-3.5-turbo": FamilyOpenAI,
	"gemma-7b":      FamilyLocal,
	"gemma-2b":      FamilyLocal,
	"llama-2-7b":    FamilyLocal,
	"llama-2-13b":   FamilyLocal,
	"llama-2-70b":   FamilyLocal,
	"mock":          FamilyMock,
}

// FamilyForModel maps a model identifier to its backend family.
func FamilyForModel(model string) (Family, bool) {
	f, ok := modelFamilies[normalizeModel(model)]
	return f, ok
}

// SupportedModels returns every mapped model identifier, sorted.
func SupportedModels() []string {
	out := make([]string, 0, len(modelFamilies))
	for m := range modelFamilies {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Factory builds the generator serving model.
type Factory func(model string) (interfaces.IProposalGenerator, error)

// Selector resolves model identifiers to generators. Generators are built
// lazily on first use and reused afterwards.
type Selector struct {
	defaultModel string
	factories    map[Family]Factory
	logger       *zap.Logger

	mu         sync.Mutex
	generators map[string]interfaces.IProposalGenerator
}

var _ interfaces.IGeneratorSelector = (*Selector)(nil)

func NewSelector(defaultModel string, factories map[Family]Factory, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := make(map[Family]Factory, len(factories))
	for f, fn := range factories {
		if fn != nil {
			fs[f] = fn
		}
	}
	return &Selector{
		defaultModel: normalizeModel(defaultModel),
		factories:    fs,
		logger:       logger,
		generators:   make(map[string]interfaces.IProposalGenerator),
	}
}

func (s *Selector) DefaultModel() string {
	return s.defaultModel
}

// SelectGenerator falls back to the default model when model is empty.
// It fails with ErrUnsupportedModel for unmapped identifiers and with
// ErrServiceUnavailable when the resolved generator is not available.
func (s *Selector) SelectGenerator(model string) (interfaces.IProposalGenerator, error) {
	model = normalizeModel(model)
	if model == "" {
		model = s.defaultModel
	}

	family, ok := FamilyForModel(model)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, model)
	}

	gen, err := s.resolve(model, family)
	if err != nil {
		return nil, err
	}
	if !gen.IsAvailable() {
		return nil, fmt.Errorf("%w: %s", ErrServiceUnavailable, model)
	}
	return gen, nil
}

// ListAvailableModels returns the sorted mapped models whose generator
// resolves and reports available. Resolution errors count as unavailable.
func (s *Selector) ListAvailableModels() []string {
	out := make([]string, 0, len(modelFamilies))
	for _, m := range SupportedModels() {
		if _, err := s.SelectGenerator(m); err != nil {
			s.logger.Debug("model unavailable", zap.String("model", m), zap.Error(err))
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Selector) resolve(model string, family Family) (interfaces.IProposalGenerator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen, ok := s.generators[model]; ok {
		return gen, nil
	}

	factory, ok := s.factories[family]
	if !ok {
		return nil, fmt.Errorf("%w: no %s backend configured for %s", ErrServiceUnavailable, family, model)
	}
	gen, err := factory(model)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator for %q: %w", model, err)
	}
	s.generators[model] = gen
	return gen, nil
}

func normalizeModel(model string) string {
	return strings.ToLower(strings.TrimSpace(model))
}
