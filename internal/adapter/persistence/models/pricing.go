package models

import (
	"time"

	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingModel is a row of any <dimension>_pricing table; callers select
// the table with db.Table(dim.Table()).
type PricingModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	ItemKey       string          `gorm:"column:item_key;size:128;not null"`
	Rate          decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	UnitOfMeasure string          `gorm:"size:32"`
	Description   string          `gorm:"type:text"`
	LastUpdated   time.Time       `gorm:"not null"`
	UpdatedBy     string          `gorm:"size:128"`
}

// PriceHistoryModel is the append-only price_history row.
type PriceHistoryModel struct {
	ID           string          `gorm:"primaryKey;size:36"`
	ItemID       string          `gorm:"size:128;not null;index"`
	ItemType     string          `gorm:"size:32;not null;index"`
	OldPrice     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	NewPrice     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Region       string          `gorm:"size:64"`
	PropertyType string          `gorm:"size:64"`
	Season       string          `gorm:"size:16"`
	ChangeDate   time.Time       `gorm:"not null;index"`
	ChangedBy    string          `gorm:"size:128"`
	Reason       string          `gorm:"type:text"`
}

func (PriceHistoryModel) TableName() string { return "price_history" }

func (m PricingModel) ToEntity(dim entities.PricingDimension) entities.PricingRecord {
	return entities.PricingRecord{
		ID:            m.ID,
		Dimension:     dim,
		Key:           m.ItemKey,
		Rate:          m.Rate,
		UnitOfMeasure: m.UnitOfMeasure,
		Description:   m.Description,
		LastUpdated:   m.LastUpdated.UTC(),
		UpdatedBy:     m.UpdatedBy,
	}
}

func PricingFromEntity(r entities.PricingRecord) PricingModel {
	return PricingModel{
		ID:            r.ID,
		ItemKey:       r.Key,
		Rate:          r.Rate,
		UnitOfMeasure: r.UnitOfMeasure,
		Description:   r.Description,
		LastUpdated:   r.LastUpdated.UTC(),
		UpdatedBy:     r.UpdatedBy,
	}
}

func (m PriceHistoryModel) ToEntity() entities.PriceHistory {
	return entities.PriceHistory{
		ID:           m.ID,
		ItemID:       m.ItemID,
		ItemType:     m.ItemType,
		OldPrice:     m.OldPrice,
		NewPrice:     m.NewPrice,
		Region:       m.Region,
		PropertyType: m.PropertyType,
		Season:       m.Season,
		ChangeDate:   m.ChangeDate.UTC(),
		ChangedBy:    m.ChangedBy,
		Reason:       m.Reason,
	}
}

func PriceHistoryFromEntity(h entities.PriceHistory) PriceHistoryModel {
	return PriceHistoryModel{
		ID:           h.ID,
		ItemID:       h.ItemID,
		ItemType:     h.ItemType,
		OldPrice:     h.OldPrice,
		NewPrice:     h.NewPrice,
		Region:       h.Region,
		PropertyType: h.PropertyType,
		Season:       h.Season,
		ChangeDate:   h.ChangeDate.UTC(),
		ChangedBy:    h.ChangedBy,
		Reason:       h.Reason,
	}
}
