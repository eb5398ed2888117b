package interfaces

import (
	"context"
	"remodeling_proposals/internal/domain/entities"
)

// IProposalRepository abstracts key/value persistence for Proposal.
//
// Missing records are reported as a zero Proposal (ID == "") or false,
// never as an error; the use case turns them into ErrProposalNotFound.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Proposal, error)
}
