package response

import (
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/usecase"
)

type MaterialResponse struct {
	ID                string   `json:"id"`
	ServiceID         string   `json:"serviceId,omitempty"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	UnitPrice         float64  `json:"unitPrice"`
	Quantity          float64  `json:"quantity"`
	UnitOfMeasure     string   `json:"unitOfMeasure"`
	PropertyTypes     []string `json:"propertyTypes"`
	Grade             string   `json:"grade,omitempty"`
	Brand             string   `json:"brand,omitempty"`
	IsEcoFriendly     bool     `json:"isEcoFriendly"`
	Warranty          string   `json:"warranty,omitempty"`
	EstimatedDuration int      `json:"estimatedDuration"`
}

type ServiceResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Category          string             `json:"category"`
	BasePrice         float64            `json:"basePrice"`
	LaborCost         float64            `json:"laborCost"`
	UnitOfMeasure     string             `json:"unitOfMeasure"`
	PropertyTypes     []string           `json:"propertyTypes"`
	Regions           []string           `json:"regions"`
	RequiredSkills    []string           `json:"requiredSkills"`
	RequiresPermit    bool               `json:"requiresPermit"`
	ComplexityLevel   string             `json:"complexityLevel"`
	EstimatedDuration int                `json:"estimatedDuration"`
	RequiredMaterials []MaterialResponse `json:"requiredMaterials"`
}

type ServiceSuggestionResponse struct {
	Service       ServiceResponse `json:"service"`
	EstimatedCost float64         `json:"estimatedCost"`
	CostPerSqFt   float64         `json:"costPerSqFt"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:                m.ID,
		ServiceID:         m.ServiceID,
		Name:              m.Name,
		Description:       m.Description,
		Category:          m.Category,
		UnitPrice:         m.UnitPrice.InexactFloat64(),
		Quantity:          m.Quantity.InexactFloat64(),
		UnitOfMeasure:     m.UnitOfMeasure,
		PropertyTypes:     nonNilStrings(m.PropertyTypes),
		Grade:             m.Grade,
		Brand:             m.Brand,
		IsEcoFriendly:     m.IsEcoFriendly,
		Warranty:          m.Warranty,
		EstimatedDuration: m.EstimatedDuration,
	}
}

func FromMaterials(in []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(in))
	for _, m := range in {
		out = append(out, FromMaterial(m))
	}
	return out
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		Category:          s.Category,
		BasePrice:         s.BasePrice.InexactFloat64(),
		LaborCost:         s.LaborCost.InexactFloat64(),
		UnitOfMeasure:     s.UnitOfMeasure,
		PropertyTypes:     nonNilStrings(s.PropertyTypes),
		Regions:           nonNilStrings(s.Regions),
		RequiredSkills:    nonNilStrings(s.RequiredSkills),
		RequiresPermit:    s.RequiresPermit,
		ComplexityLevel:   string(s.ComplexityLevel),
		EstimatedDuration: s.EstimatedDuration,
		RequiredMaterials: FromMaterials(s.RequiredMaterials),
	}
}

func FromServices(in []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromService(s))
	}
	return out
}

func FromSuggestions(in []usecase.ServiceSuggestion) []ServiceSuggestionResponse {
	out := make([]ServiceSuggestionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceSuggestionResponse{
			Service:       FromService(s.Service),
			EstimatedCost: pricing.Round(s.EstimatedCost).InexactFloat64(),
			CostPerSqFt:   pricing.Round(s.CostPerSqFt).InexactFloat64(),
		})
	}
	return out
}
