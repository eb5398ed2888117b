package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SuggestServicesInput describes the property a suggestion is made for.
type SuggestServicesInput struct {
	PropertyType string
	PropertySize decimal.Decimal
	Region       string
	Budget       decimal.Decimal
}

// ServiceSuggestion is a catalog service that fits the budget.
type ServiceSuggestion struct {
	Service       entities.Service
	EstimatedCost decimal.Decimal
	CostPerSqFt   decimal.Decimal
}

type ICatalogUseCase interface {
	ListServices(ctx context.Context, propertyType string) ([]entities.Service, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	SuggestServices(ctx context.Context, in SuggestServicesInput) ([]ServiceSuggestion, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
	engine  *pricing.Engine
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository, engine *pricing.Engine) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, engine: engine}
}

func (u *CatalogUseCase) ListServices(ctx context.Context, propertyType string) ([]entities.Service, error) {
	return u.catalog.ListServices(ctx, strings.TrimSpace(propertyType))
}

func (u *CatalogUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return u.catalog.ListMaterials(ctx)
}

// SuggestServices returns the services for the property type whose adjusted
// cost (base + labor + materials, times the combined multiplier) fits the
// budget, most expensive per square foot first.
func (u *CatalogUseCase) SuggestServices(ctx context.Context, in SuggestServicesInput) ([]ServiceSuggestion, error) {
	propertyType := strings.TrimSpace(in.PropertyType)
	switch {
	case propertyType == "":
		return nil, fmt.Errorf("%w: property type is required", ErrInvalidProposalInput)
	case !in.PropertySize.IsPositive():
		return nil, fmt.Errorf("%w: property size must be positive", ErrInvalidProposalInput)
	case in.Budget.IsNegative():
		return nil, fmt.Errorf("%w: budget must not be negative", ErrInvalidProposalInput)
	}

	services, err := u.catalog.ListServices(ctx, propertyType)
	if err != nil {
		return nil, err
	}

	multiplier := u.engine.CombinedMultiplier(in.Region, propertyType, pricing.SeasonFor(u.engine.Now()))
	out := make([]ServiceSuggestion, 0, len(services))
	for _, s := range services {
		materials := decimal.Zero
		for _, m := range s.RequiredMaterials {
			materials = materials.Add(m.UnitPrice.Mul(m.Quantity))
		}
		cost := s.BasePrice.Add(s.LaborCost).Add(materials).Mul(multiplier)
		if cost.GreaterThan(in.Budget) {
			continue
		}
		out = append(out, ServiceSuggestion{
			Service:       s,
			EstimatedCost: cost,
			CostPerSqFt:   cost.Div(in.PropertySize),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CostPerSqFt.GreaterThan(out[j].CostPerSqFt)
	})
	return out, nil
}
