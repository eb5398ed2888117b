package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/infrastructure/documents"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrInvalidProposalInput = errors.New("invalid proposal input")
)

// GenerateProposalInput is the request to create a proposal. Model is
// optional; the selector's default applies when it is empty.
type GenerateProposalInput struct {
	PropertyType      string
	PropertySize      decimal.Decimal
	Region            string
	Budget            decimal.Decimal
	RequestedServices []string
	ClientName        string
	ClientPhone       string
	ClientEmail       string
	SiteAnalysis      string
	Model             string
}

// UpdateProposalInput carries the fields an update overwrites. An empty
// Status keeps the stored one; empty client and narrative fields are kept.
type UpdateProposalInput struct {
	ID           string
	PropertyType string
	PropertySize decimal.Decimal
	Region       string
	Budget       decimal.Decimal
	Body         string
	Status       entities.ProposalStatus
	ClientName   string
	ClientPhone  string
	ClientEmail  string
	SiteAnalysis string
	ProjectScope string
}

// ModelCatalog lists generation models that can currently serve requests.
type ModelCatalog struct {
	Default   string
	Available []string
}

// IProposalUseCase exposes proposal operations.
//
//   - POST /v1/proposals => GenerateProposal()
//   - GET/PUT/DELETE /v1/proposals/{id} => GetByID(), Update(), Delete()
//   - GET /v1/proposals/{id}/pdf => RenderPDF()

type IProposalUseCase interface {
	GenerateProposal(ctx context.Context, in GenerateProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListAll(ctx context.Context) ([]entities.Proposal, error)
	Update(ctx context.Context, in UpdateProposalInput) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
	RenderPDF(ctx context.Context, id string) ([]byte, error)
	ListModels(ctx context.Context) ModelCatalog
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	selector interfaces.IGeneratorSelector
	logger   *zap.Logger
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, selector interfaces.IGeneratorSelector, logger *zap.Logger) *ProposalUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalUseCase{repo: repo, selector: selector, logger: logger}
}

func (u *ProposalUseCase) GenerateProposal(ctx context.Context, in GenerateProposalInput) (entities.Proposal, error) {
	if err := validateGenerateInput(in); err != nil {
		return entities.Proposal{}, err
	}

	generator, err := u.selector.SelectGenerator(strings.TrimSpace(in.Model))
	if err != nil {
		return entities.Proposal{}, err
	}

	generated, err := generator.GenerateProposal(ctx, entities.GenerationRequest{
		ClientName:        strings.TrimSpace(in.ClientName),
		PropertyType:      strings.TrimSpace(in.PropertyType),
		PropertySize:      in.PropertySize,
		Region:            strings.TrimSpace(in.Region),
		Budget:            in.Budget,
		RequestedServices: trimAll(in.RequestedServices),
		SiteAnalysis:      strings.TrimSpace(in.SiteAnalysis),
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	p := generated.WithClient(in.ClientName, in.ClientPhone, in.ClientEmail)
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to store proposal: %w", err)
	}

	u.logger.Info("Proposal generated",
		zap.String("proposal_id", created.ID),
		zap.String("model", created.Model),
		zap.String("total_cost", created.TotalCost.StringFixed(2)),
	)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) ListAll(ctx context.Context) ([]entities.Proposal, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Proposal{}
	}
	return out, nil
}

// Update overwrites an existing proposal; it never creates one.
func (u *ProposalUseCase) Update(ctx context.Context, in UpdateProposalInput) (entities.Proposal, error) {
	current, err := u.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := validateUpdateInput(in); err != nil {
		return entities.Proposal{}, err
	}

	status := in.Status
	if status == "" {
		status = current.Status
	}
	next := current.WithUpdates(entities.Proposal{
		PropertyType: strings.TrimSpace(in.PropertyType),
		PropertySize: in.PropertySize,
		Region:       strings.TrimSpace(in.Region),
		Budget:       in.Budget,
		Body:         in.Body,
		Status:       status,
		ClientName:   in.ClientName,
		ClientPhone:  in.ClientPhone,
		ClientEmail:  in.ClientEmail,
		SiteAnalysis: strings.TrimSpace(in.SiteAnalysis),
		ProjectScope: strings.TrimSpace(in.ProjectScope),
	})

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProposalNotFound
	}
	return nil
}

func (u *ProposalUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := documents.WriteProposalPDF(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (u *ProposalUseCase) ListModels(_ context.Context) ModelCatalog {
	return ModelCatalog{
		Default:   u.selector.DefaultModel(),
		Available: u.selector.ListAvailableModels(),
	}
}

func validateGenerateInput(in GenerateProposalInput) error {
	switch {
	case strings.TrimSpace(in.PropertyType) == "":
		return fmt.Errorf("%w: property type is required", ErrInvalidProposalInput)
	case strings.TrimSpace(in.Region) == "":
		return fmt.Errorf("%w: region is required", ErrInvalidProposalInput)
	case !in.PropertySize.IsPositive():
		return fmt.Errorf("%w: property size must be positive", ErrInvalidProposalInput)
	case in.Budget.IsNegative():
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidProposalInput)
	}
	return nil
}

func validateUpdateInput(in UpdateProposalInput) error {
	switch {
	case strings.TrimSpace(in.PropertyType) == "":
		return fmt.Errorf("%w: property type is required", ErrInvalidProposalInput)
	case strings.TrimSpace(in.Region) == "":
		return fmt.Errorf("%w: region is required", ErrInvalidProposalInput)
	case !in.PropertySize.IsPositive():
		return fmt.Errorf("%w: property size must be positive", ErrInvalidProposalInput)
	case in.Budget.IsNegative():
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidProposalInput)
	case in.Status != "" && !in.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidProposalInput, in.Status)
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
