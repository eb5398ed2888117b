package models

import (
	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ServiceModel is the services table row.
type ServiceModel struct {
	ID                string                      `gorm:"primaryKey;size:36"`
	Name              string                      `gorm:"size:128;not null;uniqueIndex"`
	Description       string                      `gorm:"type:text"`
	Category          string                      `gorm:"size:64;index"`
	BasePrice         decimal.Decimal             `gorm:"type:decimal(14,2);not null;default:0"`
	UnitPrice         decimal.Decimal             `gorm:"type:decimal(14,2);not null;default:0"`
	Quantity          decimal.Decimal             `gorm:"type:decimal(14,4);not null;default:1"`
	LaborCost         decimal.Decimal             `gorm:"type:decimal(14,2);not null;default:0"`
	PropertyTypes     datatypes.JSONSlice[string] `gorm:"not null"`
	Regions           datatypes.JSONSlice[string] `gorm:"not null"`
	UnitOfMeasure     string                      `gorm:"size:32"`
	EstimatedDuration int                         `gorm:"not null;default:0"`
	RequiredSkills    datatypes.JSONSlice[string] `gorm:"not null"`
	RequiresPermit    bool                        `gorm:"not null;default:false"`
	ComplexityLevel   string                      `gorm:"size:32"`
}

func (ServiceModel) TableName() string { return "services" }

// MaterialModel is the materials table row. ServiceID is empty for
// standalone catalog materials.
type MaterialModel struct {
	ID                string                      `gorm:"primaryKey;size:36"`
	ServiceID         string                      `gorm:"size:36;index"`
	Name              string                      `gorm:"size:128;not null"`
	Description       string                      `gorm:"type:text"`
	BasePrice         decimal.Decimal             `gorm:"type:decimal(14,2);not null;default:0"`
	UnitPrice         decimal.Decimal             `gorm:"type:decimal(14,2);not null;default:0"`
	Quantity          decimal.Decimal             `gorm:"type:decimal(14,4);not null;default:1"`
	UnitOfMeasure     string                      `gorm:"size:32"`
	PropertyTypes     datatypes.JSONSlice[string] `gorm:"not null"`
	Regions           datatypes.JSONSlice[string] `gorm:"not null"`
	EstimatedDuration int                         `gorm:"not null;default:0"`
	Category          string                      `gorm:"size:64"`
	Grade             string                      `gorm:"size:32"`
	Brand             string                      `gorm:"size:64"`
	IsEcoFriendly     bool                        `gorm:"not null;default:false"`
	Warranty          string                      `gorm:"size:64"`
}

func (MaterialModel) TableName() string { return "materials" }

func (m ServiceModel) ToEntity() entities.Service {
	return entities.Service{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Category:          m.Category,
		BasePrice:         m.BasePrice,
		UnitPrice:         m.UnitPrice,
		Quantity:          m.Quantity,
		LaborCost:         m.LaborCost,
		PropertyTypes:     []string(m.PropertyTypes),
		Regions:           []string(m.Regions),
		UnitOfMeasure:     m.UnitOfMeasure,
		EstimatedDuration: m.EstimatedDuration,
		RequiredSkills:    []string(m.RequiredSkills),
		RequiresPermit:    m.RequiresPermit,
		ComplexityLevel:   entities.ComplexityLevel(m.ComplexityLevel),
	}
}

func ServiceFromEntity(s entities.Service) ServiceModel {
	return ServiceModel{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		Category:          s.Category,
		BasePrice:         s.BasePrice,
		UnitPrice:         s.UnitPrice,
		Quantity:          s.Quantity,
		LaborCost:         s.LaborCost,
		PropertyTypes:     jsonSlice(s.PropertyTypes),
		Regions:           jsonSlice(s.Regions),
		UnitOfMeasure:     s.UnitOfMeasure,
		EstimatedDuration: s.EstimatedDuration,
		RequiredSkills:    jsonSlice(s.RequiredSkills),
		RequiresPermit:    s.RequiresPermit,
		ComplexityLevel:   string(s.ComplexityLevel),
	}
}

func (m MaterialModel) ToEntity() entities.Material {
	return entities.Material{
		ID:                m.ID,
		ServiceID:         m.ServiceID,
		Name:              m.Name,
		Description:       m.Description,
		BasePrice:         m.BasePrice,
		UnitPrice:         m.UnitPrice,
		Quantity:          m.Quantity,
		UnitOfMeasure:     m.UnitOfMeasure,
		PropertyTypes:     []string(m.PropertyTypes),
		Regions:           []string(m.Regions),
		EstimatedDuration: m.EstimatedDuration,
		Category:          m.Category,
		Grade:             m.Grade,
		Brand:             m.Brand,
		IsEcoFriendly:     m.IsEcoFriendly,
		Warranty:          m.Warranty,
	}
}

func MaterialFromEntity(m entities.Material) MaterialModel {
	return MaterialModel{
		ID:                m.ID,
		ServiceID:         m.ServiceID,
		Name:              m.Name,
		Description:       m.Description,
		BasePrice:         m.BasePrice,
		UnitPrice:         m.UnitPrice,
		Quantity:          m.Quantity,
		UnitOfMeasure:     m.UnitOfMeasure,
		PropertyTypes:     jsonSlice(m.PropertyTypes),
		Regions:           jsonSlice(m.Regions),
		EstimatedDuration: m.EstimatedDuration,
		Category:          m.Category,
		Grade:             m.Grade,
		Brand:             m.Brand,
		IsEcoFriendly:     m.IsEcoFriendly,
		Warranty:          m.Warranty,
	}
}

func jsonSlice(in []string) datatypes.JSONSlice[string] {
	if in == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](in)
}
