package response

import (
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/usecase"

	"github.com/shopspring/decimal"
)

type PricingRecordResponse struct {
	ID            string    `json:"id"`
	Dimension     string    `json:"dimension"`
	Key           string    `json:"key"`
	Rate          float64   `json:"rate"`
	UnitOfMeasure string    `json:"unitOfMeasure,omitempty"`
	Description   string    `json:"description"`
	LastUpdated   time.Time `json:"lastUpdated"`
	UpdatedBy     string    `json:"updatedBy"`
}

type PriceHistoryResponse struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"itemId"`
	ItemType     string    `json:"itemType"`
	OldPrice     float64   `json:"oldPrice"`
	NewPrice     float64   `json:"newPrice"`
	Region       string    `json:"region,omitempty"`
	PropertyType string    `json:"propertyType,omitempty"`
	Season       string    `json:"season,omitempty"`
	ChangeDate   time.Time `json:"changeDate"`
	ChangedBy    string    `json:"changedBy"`
	Reason       string    `json:"reason"`
}

type BulkUpdateResponse struct {
	Dimension string `json:"dimension"`
	Updated   int    `json:"updated"`
}

type QuoteResponse struct {
	Season     string  `json:"season"`
	Multiplier float64 `json:"multiplier"`
	Labor      float64 `json:"labor"`
	Material   float64 `json:"material"`
	Service    float64 `json:"service"`
	Total      float64 `json:"total"`
}

// PriceCalculationResponse is one calculated amount rounded to cents.
type PriceCalculationResponse struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

func FromPriceCalculation(kind string, amount decimal.Decimal) PriceCalculationResponse {
	return PriceCalculationResponse{Kind: kind, Amount: pricing.Round(amount).InexactFloat64()}
}

func FromPricingRecord(r entities.PricingRecord) PricingRecordResponse {
	return PricingRecordResponse{
		ID:            r.ID,
		Dimension:     string(r.Dimension),
		Key:           r.Key,
		Rate:          r.Rate.InexactFloat64(),
		UnitOfMeasure: r.UnitOfMeasure,
		Description:   r.Description,
		LastUpdated:   r.LastUpdated,
		UpdatedBy:     r.UpdatedBy,
	}
}

func FromPricingRecords(in []entities.PricingRecord) []PricingRecordResponse {
	out := make([]PricingRecordResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromPricingRecord(r))
	}
	return out
}

func FromPriceHistory(in []entities.PriceHistory) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, 0, len(in))
	for _, h := range in {
		out = append(out, PriceHistoryResponse{
			ID:           h.ID,
			ItemID:       h.ItemID,
			ItemType:     h.ItemType,
			OldPrice:     h.OldPrice.InexactFloat64(),
			NewPrice:     h.NewPrice.InexactFloat64(),
			Region:       h.Region,
			PropertyType: h.PropertyType,
			Season:       h.Season,
			ChangeDate:   h.ChangeDate,
			ChangedBy:    h.ChangedBy,
			Reason:       h.Reason,
		})
	}
	return out
}

// FromQuote rounds amounts to cents; the multiplier is kept exact.
func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		Season:     q.Season,
		Multiplier: q.Multiplier.InexactFloat64(),
		Labor:      pricing.Round(q.Labor).InexactFloat64(),
		Material:   pricing.Round(q.Material).InexactFloat64(),
		Service:    pricing.Round(q.Service).InexactFloat64(),
		Total:      pricing.Round(q.Total).InexactFloat64(),
	}
}
