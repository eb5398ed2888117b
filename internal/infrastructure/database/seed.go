package database

import (
	"fmt"
	"sort"
	"time"

	"remodeling_proposals/internal/adapter/persistence/models"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const seedActor = "seed"

var allRegions = []string{"North", "South", "East", "West"}

// SeedCatalog loads the default catalog and multiplier tables into an empty
// database. Tables that already hold rows are left untouched.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var services int64
		if err := tx.Model(&models.ServiceModel{}).Count(&services).Error; err != nil {
			return err
		}
		if services == 0 {
			if err := seedServices(tx); err != nil {
				return fmt.Errorf("seed services: %w", err)
			}
		}
		return seedMultipliers(tx)
	})
}

func seedServices(tx *gorm.DB) error {
	for _, s := range DefaultServices() {
		if err := tx.Create(ptr(models.ServiceFromEntity(s))).Error; err != nil {
			return err
		}
		for _, m := range s.RequiredMaterials {
			if err := tx.Create(ptr(models.MaterialFromEntity(m))).Error; err != nil {
				return err
			}
		}
	}
	for _, m := range DefaultMaterials() {
		if err := tx.Create(ptr(models.MaterialFromEntity(m))).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedMultipliers(tx *gorm.DB) error {
	tables := pricing.DefaultTables()
	byDim := map[entities.PricingDimension]map[string]decimal.Decimal{
		entities.DimensionRegional:     tables.Regional,
		entities.DimensionPropertyType: tables.PropertyType,
		entities.DimensionSeasonal:     tables.Seasonal,
	}
	now := time.Now().UTC()
	for dim, rates := range byDim {
		var n int64
		if err := tx.Table(dim.Table()).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		keys := make([]string, 0, len(rates))
		for k := range rates {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			row := models.PricingModel{
				ID:          uuid.NewString(),
				ItemKey:     k,
				Rate:        rates[k],
				Description: fmt.Sprintf("default %s multiplier", dim),
				LastUpdated: now,
				UpdatedBy:   seedActor,
			}
			if err := tx.Table(dim.Table()).Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

type serviceSeed struct {
	id, name, category, unit, complexity string
	base, labor                          int64
	days                                 int
	permit                               bool
	skills                               []string
	propertyTypes                        []string
	materials                            []materialSeed
}

type materialSeed struct {
	id, name, unit, category, grade string
	price                           string
	qty                             int64
	eco                             bool
}

var serviceSeeds = []serviceSeed{
	{id: "svc-kitchen-remodel", name: "Kitchen Remodel", category: "Kitchen", unit: "each", complexity: "Advanced",
		base: 25000, labor: 15000, days: 21, permit: true, skills: []string{"Plumbing", "Electrical", "Carpentry"},
		propertyTypes: []string{"Residential"},
		materials: []materialSeed{
			{id: "mat-cabinets", name: "Shaker Cabinets", unit: "linear feet", category: "Cabinetry", grade: "Premium", price: "250", qty: 20},
			{id: "mat-quartz", name: "Quartz Countertop", unit: "square feet", category: "Countertops", grade: "Premium", price: "75", qty: 40},
		}},
	{id: "svc-bathroom-renovation", name: "Bathroom Renovation", category: "Bathroom", unit: "each", complexity: "Intermediate",
		base: 15000, labor: 10000, days: 14, permit: true, skills: []string{"Plumbing", "Tiling"},
		propertyTypes: []string{"Residential"},
		materials: []materialSeed{
			{id: "mat-porcelain-tile", name: "Porcelain Tile", unit: "square feet", category: "Tile", grade: "Standard", price: "8", qty: 120},
			{id: "mat-low-flow-fixtures", name: "Low-Flow Fixture Set", unit: "each", category: "Fixtures", grade: "Standard", price: "650", qty: 1, eco: true},
		}},
	{id: "svc-flooring-installation", name: "Flooring Installation", category: "Flooring", unit: "square feet", complexity: "Basic",
		base: 8000, labor: 5000, days: 5, skills: []string{"Flooring"},
		propertyTypes: []string{"Residential"},
		materials: []materialSeed{
			{id: "mat-oak-hardwood", name: "Oak Hardwood Planks", unit: "square feet", category: "Flooring", grade: "Premium", price: "9", qty: 500},
		}},
	{id: "svc-interior-painting", name: "Interior Painting", category: "Painting", unit: "square feet", complexity: "Basic",
		base: 3000, labor: 2000, days: 4, skills: []string{"Painting"},
		propertyTypes: []string{"Residential"},
		materials: []materialSeed{
			{id: "mat-low-voc-paint", name: "Low-VOC Interior Paint", unit: "gallon", category: "Paint", grade: "Standard", price: "45", qty: 15, eco: true},
		}},
	{id: "svc-carpentry-work", name: "Carpentry Work", category: "Carpentry", unit: "each", complexity: "Intermediate",
		base: 5000, labor: 3500, days: 7, skills: []string{"Carpentry"},
		propertyTypes: []string{"Residential"},
		materials: []materialSeed{
			{id: "mat-trim-lumber", name: "Finish Trim Lumber", unit: "linear feet", category: "Lumber", grade: "Standard", price: "4", qty: 300},
		}},
	{id: "svc-office-space-renovation", name: "Office Space Renovation", category: "Office", unit: "square feet", complexity: "Advanced",
		base: 50000, labor: 30000, days: 45, permit: true, skills: []string{"Electrical", "Drywall", "Carpentry"},
		propertyTypes: []string{"Commercial"},
		materials: []materialSeed{
			{id: "mat-acoustic-panels", name: "Acoustic Ceiling Panels", unit: "square feet", category: "Ceiling", grade: "Commercial", price: "6", qty: 2000},
		}},
	{id: "svc-retail-space-remodel", name: "Retail Space Remodel", category: "Retail", unit: "square feet", complexity: "Advanced",
		base: 75000, labor: 45000, days: 60, permit: true, skills: []string{"Electrical", "Carpentry", "Design"},
		propertyTypes: []string{"Commercial"},
		materials: []materialSeed{
			{id: "mat-led-track-lighting", name: "LED Track Lighting", unit: "each", category: "Lighting", grade: "Commercial", price: "180", qty: 40, eco: true},
		}},
	{id: "svc-restaurant-renovation", name: "Restaurant Renovation", category: "Restaurant", unit: "square feet", complexity: "Advanced",
		base: 100000, labor: 60000, days: 75, permit: true, skills: []string{"Plumbing", "Electrical", "HVAC"},
		propertyTypes: []string{"Commercial"},
		materials: []materialSeed{
			{id: "mat-stainless-surfaces", name: "Stainless Steel Prep Surfaces", unit: "linear feet", category: "Metalwork", grade: "Commercial", price: "320", qty: 30},
		}},
	{id: "svc-commercial-flooring", name: "Commercial Flooring", category: "Flooring", unit: "square feet", complexity: "Intermediate",
		base: 15000, labor: 10000, days: 10, skills: []string{"Flooring"},
		propertyTypes: []string{"Commercial"},
		materials: []materialSeed{
			{id: "mat-lvt", name: "Luxury Vinyl Tile", unit: "square feet", category: "Flooring", grade: "Commercial", price: "5", qty: 1500},
		}},
	{id: "svc-warehouse-renovation", name: "Warehouse Renovation", category: "Industrial", unit: "square feet", complexity: "Advanced",
		base: 100000, labor: 60000, days: 90, permit: true, skills: []string{"Structural", "Electrical", "Welding"},
		propertyTypes: []string{"Industrial"},
		materials: []materialSeed{
			{id: "mat-steel-framing", name: "Structural Steel Framing", unit: "ton", category: "Steel", grade: "Industrial", price: "2400", qty: 10},
		}},
	{id: "svc-facility-upgrades", name: "Facility Upgrades", category: "Industrial", unit: "each", complexity: "Advanced",
		base: 75000, labor: 45000, days: 60, permit: true, skills: []string{"Electrical", "HVAC"},
		propertyTypes: []string{"Industrial"},
		materials: []materialSeed{
			{id: "mat-hvac-units", name: "High-Efficiency HVAC Unit", unit: "each", category: "HVAC", grade: "Industrial", price: "8500", qty: 2, eco: true},
		}},
	{id: "svc-industrial-flooring", name: "Industrial Flooring", category: "Flooring", unit: "square feet", complexity: "Intermediate",
		base: 25000, labor: 15000, days: 14, skills: []string{"Flooring", "Concrete"},
		propertyTypes: []string{"Industrial"},
		materials: []materialSeed{
			{id: "mat-epoxy-coating", name: "Epoxy Floor Coating", unit: "gallon", category: "Coatings", grade: "Industrial", price: "120", qty: 60},
		}},
}

// Standalone materials are not owned by any service.
var materialSeeds = []materialSeed{
	{id: "1", name: "Drywall Sheet", unit: "each", category: "Drywall", grade: "Standard", price: "15", qty: 1},
	{id: "2", name: "Fiberglass Insulation", unit: "square feet", category: "Insulation", grade: "Standard", price: "1.2", qty: 1, eco: true},
	{id: "3", name: "Ceramic Wall Tile", unit: "square feet", category: "Tile", grade: "Standard", price: "4.5", qty: 1},
	{id: "4", name: "Exterior Latex Paint", unit: "gallon", category: "Paint", grade: "Premium", price: "55", qty: 1},
}

// DefaultServices returns the built-in service catalog with owned materials.
func DefaultServices() []entities.Service {
	out := make([]entities.Service, 0, len(serviceSeeds))
	for _, s := range serviceSeeds {
		svc := entities.Service{
			ID:                s.id,
			Name:              s.name,
			Description:       s.name + " for " + s.propertyTypes[0] + " properties",
			Category:          s.category,
			BasePrice:         decimal.NewFromInt(s.base),
			UnitPrice:         decimal.NewFromInt(s.base),
			Quantity:          decimal.NewFromInt(1),
			LaborCost:         decimal.NewFromInt(s.labor),
			PropertyTypes:     s.propertyTypes,
			Regions:           allRegions,
			UnitOfMeasure:     s.unit,
			EstimatedDuration: s.days,
			RequiredSkills:    s.skills,
			RequiresPermit:    s.permit,
			ComplexityLevel:   entities.ComplexityLevel(s.complexity),
		}
		for _, m := range s.materials {
			mat := m.toEntity(s.propertyTypes)
			mat.ServiceID = s.id
			svc.RequiredMaterials = append(svc.RequiredMaterials, mat)
		}
		out = append(out, svc)
	}
	return out
}

// DefaultMaterials returns the standalone catalog materials.
func DefaultMaterials() []entities.Material {
	out := make([]entities.Material, 0, len(materialSeeds))
	for _, m := range materialSeeds {
		out = append(out, m.toEntity([]string{"Residential", "Commercial", "Industrial"}))
	}
	return out
}

func (m materialSeed) toEntity(propertyTypes []string) entities.Material {
	price := decimal.RequireFromString(m.price)
	return entities.Material{
		ID:            m.id,
		Name:          m.name,
		Description:   m.name,
		BasePrice:     price,
		UnitPrice:     price,
		Quantity:      decimal.NewFromInt(m.qty),
		UnitOfMeasure: m.unit,
		PropertyTypes: propertyTypes,
		Regions:       allRegions,
		Category:      m.category,
		Grade:         m.grade,
		IsEcoFriendly: m.eco,
		Warranty:      "1 year",
	}
}

func ptr[T any](v T) *T { return &v }
