package interfaces

import (
	"context"
	"remodeling_proposals/internal/domain/entities"
)

// ITextGenerator is a text-generation backend (hosted, local or mock).

type ITextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
	Available() bool
}

// IProposalGenerator turns a generation request into a Draft proposal.
// Every backend is driven through the same implementation of this contract.

type IProposalGenerator interface {
	GenerateProposal(ctx context.Context, req entities.GenerationRequest) (entities.Proposal, error)
	ModelName() string
	IsAvailable() bool
}

// IGeneratorSelector resolves a model identifier to a ready generator.

type IGeneratorSelector interface {
	SelectGenerator(model string) (IProposalGenerator, error)
	ListAvailableModels() []string
	DefaultModel() string
}
