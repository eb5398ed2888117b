package interfaces

import (
	"context"
	"remodeling_proposals/internal/domain/entities"
)

// ICatalogRepository is the catalog store of services and materials.
//
// ServicesByNames matches names case-insensitively and does not load
// required materials; MaterialsForServices returns the materials owned by
// the given services.

type ICatalogRepository interface {
	ListServices(ctx context.Context, propertyType string) ([]entities.Service, error)
	GetServiceByID(ctx context.Context, id string) (entities.Service, error)
	ServicesByNames(ctx context.Context, names []string) ([]entities.Service, error)
	MaterialsForServices(ctx context.Context, serviceIDs []string) ([]entities.Material, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	GetMaterialByID(ctx context.Context, id string) (entities.Material, error)
}

// ICatalogCache drops cached catalog and pricing reads after admin writes.
type ICatalogCache interface {
	Invalidate(ctx context.Context) error
}
