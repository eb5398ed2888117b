package repository

import (
	"context"
	"errors"
	"strings"

	"remodeling_proposals/internal/adapter/persistence/models"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CatalogGormRepository reads the services and materials tables.
type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// ListServices returns the services offered for propertyType with their
// required materials; an empty propertyType lists the whole catalog.
func (r *CatalogGormRepository) ListServices(ctx context.Context, propertyType string) ([]entities.Service, error) {
	var rows []models.ServiceModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entities.Service, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		svc := row.ToEntity()
		if strings.TrimSpace(propertyType) != "" && !svc.AppliesTo(propertyType) {
			continue
		}
		out = append(out, svc)
		ids = append(ids, svc.ID)
	}
	if err := r.attachMaterials(ctx, out, ids); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	var row models.ServiceModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Service{}, nil
	}
	if err != nil {
		return entities.Service{}, err
	}

	svc := []entities.Service{row.ToEntity()}
	if err := r.attachMaterials(ctx, svc, []string{row.ID}); err != nil {
		return entities.Service{}, err
	}
	return svc[0], nil
}

// ServicesByNames keeps the order of names and skips unknown ones.
func (r *CatalogGormRepository) ServicesByNames(ctx context.Context, names []string) ([]entities.Service, error) {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		if k := normalizeKey(n); k != "" {
			lowered = append(lowered, k)
		}
	}
	if len(lowered) == 0 {
		return []entities.Service{}, nil
	}

	var rows []models.ServiceModel
	if err := r.db.WithContext(ctx).Where("LOWER(name) IN ?", lowered).Find(&rows).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]models.ServiceModel, len(rows))
	for _, row := range rows {
		byName[normalizeKey(row.Name)] = row
	}

	out := make([]entities.Service, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, k := range lowered {
		row, ok := byName[k]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, row.ToEntity())
	}
	return out, nil
}

func (r *CatalogGormRepository) MaterialsForServices(ctx context.Context, serviceIDs []string) ([]entities.Material, error) {
	if len(serviceIDs) == 0 {
		return []entities.Material{}, nil
	}
	var rows []models.MaterialModel
	if err := r.db.WithContext(ctx).
		Where("service_id IN ?", serviceIDs).
		Order("service_id ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toMaterials(rows), nil
}

func (r *CatalogGormRepository) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	var rows []models.MaterialModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toMaterials(rows), nil
}

func (r *CatalogGormRepository) GetMaterialByID(ctx context.Context, id string) (entities.Material, error) {
	var row models.MaterialModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Material{}, nil
	}
	if err != nil {
		return entities.Material{}, err
	}
	return row.ToEntity(), nil
}

func (r *CatalogGormRepository) attachMaterials(ctx context.Context, services []entities.Service, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	materials, err := r.MaterialsForServices(ctx, ids)
	if err != nil {
		return err
	}
	byService := make(map[string][]entities.Material)
	for _, m := range materials {
		byService[m.ServiceID] = append(byService[m.ServiceID], m)
	}
	for i := range services {
		services[i].RequiredMaterials = byService[services[i].ID]
	}
	return nil
}

func toMaterials(rows []models.MaterialModel) []entities.Material {
	out := make([]entities.Material, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToEntity())
	}
	return out
}
