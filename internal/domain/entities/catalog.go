package entities

import "github.com/shopspring/decimal"

// ComplexityLevel grades how demanding a service is to deliver.
type ComplexityLevel string

const (
	ComplexityBasic        ComplexityLevel = "Basic"
	ComplexityIntermediate ComplexityLevel = "Intermediate"
	ComplexityAdvanced     ComplexityLevel = "Advanced"
)

// Service is a catalog entry for a unit of remodeling work.
//
// LaborCost, MaterialCost and TotalCost only carry meaning once the service
// went through the pricing engine; see pricing.Engine.PriceService.
type Service struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	BasePrice         decimal.Decimal `json:"base_price"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          decimal.Decimal `json:"quantity"`
	LaborCost         decimal.Decimal `json:"labor_cost"`
	MaterialCost      decimal.Decimal `json:"material_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	PropertyTypes     []string        `json:"property_types"`
	Regions           []string        `json:"regions"`
	RequiredMaterials []Material      `json:"required_materials"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	EstimatedDuration int             `json:"estimated_duration"`
	RequiredSkills    []string        `json:"required_skills"`
	RequiresPermit    bool            `json:"requires_permit"`
	ComplexityLevel   ComplexityLevel `json:"complexity_level"`
}

// AppliesTo reports whether the service is offered for the property type.
// A service without property types applies to all of them.
func (s Service) AppliesTo(propertyType string) bool {
	return containsFold(s.PropertyTypes, propertyType)
}

// Material is owned by the service requiring it (ServiceID) or standalone in
// the catalog (ServiceID == "").
type Material struct {
	ID                string          `json:"id"`
	ServiceID         string          `json:"service_id,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	BasePrice         decimal.Decimal `json:"base_price"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          decimal.Decimal `json:"quantity"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	PropertyTypes     []string        `json:"property_types"`
	Regions           []string        `json:"regions"`
	EstimatedDuration int             `json:"estimated_duration"`
	Category          string          `json:"category"`
	Grade             string          `json:"grade"`
	Brand             string          `json:"brand"`
	IsEcoFriendly     bool            `json:"is_eco_friendly"`
	Warranty          string          `json:"warranty"`
}
