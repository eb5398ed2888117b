package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingDimension names one of the six rate tables.
type PricingDimension string

const (
	DimensionRegional     PricingDimension = "regional"
	DimensionPropertyType PricingDimension = "property_type"
	DimensionSeasonal     PricingDimension = "seasonal"
	DimensionLabor        PricingDimension = "labor"
	DimensionMaterialBase PricingDimension = "material_base"
	DimensionServiceBase  PricingDimension = "service_base"
)

var pricingDimensions = []PricingDimension{
	DimensionRegional,
	DimensionPropertyType,
	DimensionSeasonal,
	DimensionLabor,
	DimensionMaterialBase,
	DimensionServiceBase,
}

// PricingDimensions lists every dimension in a stable order.
func PricingDimensions() []PricingDimension {
	out := make([]PricingDimension, len(pricingDimensions))
	copy(out, pricingDimensions)
	return out
}

func ParsePricingDimension(raw string) (PricingDimension, bool) {
	for _, d := range pricingDimensions {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}

// IsMultiplier is true for the regional, property type and seasonal tables.
func (d PricingDimension) IsMultiplier() bool {
	return d == DimensionRegional || d == DimensionPropertyType || d == DimensionSeasonal
}

// Neutral is the rate used when a key has no record.
func (d PricingDimension) Neutral() decimal.Decimal {
	if d.IsMultiplier() {
		return decimal.NewFromInt(1)
	}
	return decimal.Zero
}

// Table is the backing table name for the dimension.
func (d PricingDimension) Table() string {
	return string(d) + "_pricing"
}

// PricingRecord maps one key of a dimension to a rate.
// Keys are stored lower-cased; at most one record exists per (dimension, key).
type PricingRecord struct {
	ID            string           `json:"id"`
	Dimension     PricingDimension `json:"dimension"`
	Key           string           `json:"key"`
	Rate          decimal.Decimal  `json:"rate"`
	UnitOfMeasure string           `json:"unit_of_measure,omitempty"`
	Description   string           `json:"description"`
	LastUpdated   time.Time        `json:"last_updated"`
	UpdatedBy     string           `json:"updated_by"`
}

// PriceHistory is an append-only audit row written on every rate change.
type PriceHistory struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	ItemType     string          `json:"item_type"`
	OldPrice     decimal.Decimal `json:"old_price"`
	NewPrice     decimal.Decimal `json:"new_price"`
	Region       string          `json:"region,omitempty"`
	PropertyType string          `json:"property_type,omitempty"`
	Season       string          `json:"season,omitempty"`
	ChangeDate   time.Time       `json:"change_date"`
	ChangedBy    string          `json:"changed_by"`
	Reason       string          `json:"reason"`
}

// PriceHistoryFilter narrows a history query. Zero values match everything;
// From and To are inclusive.
type PriceHistoryFilter struct {
	ItemID       string
	ItemType     string
	Region       string
	PropertyType string
	Season       string
	From         time.Time
	To           time.Time
}
