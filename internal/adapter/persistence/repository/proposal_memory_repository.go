package repository

import (
	"context"
	"fmt"
	"sync"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase/interfaces"
)

// ProposalMemoryRepository keeps proposals in process memory. It backs
// local runs and tests when no DynamoDB endpoint is configured.
type ProposalMemoryRepository struct {
	mu        sync.RWMutex
	proposals map[string]entities.Proposal
}

var _ interfaces.IProposalRepository = (*ProposalMemoryRepository)(nil)

func NewProposalMemoryRepository() *ProposalMemoryRepository {
	return &ProposalMemoryRepository{proposals: make(map[string]entities.Proposal)}
}

func (r *ProposalMemoryRepository) Create(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.proposals[p.ID]; ok {
		return entities.Proposal{}, fmt.Errorf("proposal %s already exists", p.ID)
	}
	r.proposals[p.ID] = p.Copy()
	return p, nil
}

func (r *ProposalMemoryRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.proposals[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	return p.Copy(), nil
}

func (r *ProposalMemoryRepository) Update(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.proposals[p.ID]
	if !ok {
		return entities.Proposal{}, nil
	}
	updated := current.WithUpdates(p)
	r.proposals[p.ID] = updated
	return updated, nil
}

func (r *ProposalMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.proposals[id]; !ok {
		return false, nil
	}
	delete(r.proposals, id)
	return true, nil
}

func (r *ProposalMemoryRepository) List(_ context.Context) ([]entities.Proposal, error) {
	r.mu.RLock()
	out := make([]entities.Proposal, 0, len(r.proposals))
	for _, p := range r.proposals {
		out = append(out, p.Copy())
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}
