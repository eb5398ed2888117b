package routes

import (
	"remodeling_proposals/internal/config"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/infrastructure/llm"
	"remodeling_proposals/internal/infrastructure/metrics"
	"remodeling_proposals/internal/usecase/generation"
	"remodeling_proposals/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// generatorFactories builds one factory per backend family. OPENAI_MODEL and
// OLLAMA_MODEL, when set, replace the name sent upstream for every model of
// their family.
func generatorFactories(
	cfg *config.Config,
	catalog interfaces.ICatalogRepository,
	engine *pricing.Engine,
	m *metrics.GenerationMetrics,
	logger *zap.Logger,
) map[generation.Family]generation.Factory {
	opts := []generation.GeneratorOption{
		generation.WithLogger(logger),
		generation.WithMetrics(m),
		generation.WithTimeout(cfg.GenerationTimeout),
		generation.WithObserver(generation.NewMultiObserver(
			generation.NewLogObserver(logger),
			generation.NewMetricsObserver(m),
		)),
	}
	httpConfig := func(baseURL string) llm.HTTPConfig {
		return llm.HTTPConfig{
			BaseURL:    baseURL,
			Timeout:    cfg.GenerationTimeout,
			RetryCount: cfg.GenerationRetries,
		}
	}

	return map[generation.Family]generation.Factory{
		generation.FamilyOpenAI: func(model string) (interfaces.IProposalGenerator, error) {
			backend := llm.NewOpenAIClient(llm.OpenAIConfig{
				HTTPConfig:   httpConfig(cfg.OpenAIBaseURL),
				APIKey:       cfg.OpenAIAPIKey,
				Model:        model,
				Upstream:     cfg.OpenAIModel,
				SystemPrompt: generation.SystemInstruction,
			}, logger)
			return generation.NewProposalGenerator(backend, catalog, engine, opts...), nil
		},
		generation.FamilyLocal: func(model string) (interfaces.IProposalGenerator, error) {
			backend := llm.NewOllamaClient(llm.OllamaConfig{
				HTTPConfig: httpConfig(cfg.OllamaURL),
				Model:      model,
				Tag:        cfg.OllamaModel,
				Stream:     cfg.OllamaStream,
			}, logger)
			return generation.NewProposalGenerator(backend, catalog, engine, opts...), nil
		},
		generation.FamilyMock: func(string) (interfaces.IProposalGenerator, error) {
			return generation.NewProposalGenerator(llm.NewMockClient(0), catalog, engine, opts...), nil
		},
	}
}
