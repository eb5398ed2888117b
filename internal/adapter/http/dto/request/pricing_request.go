package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// AddPricingRequest creates a record in the dimension named by the path.
type AddPricingRequest struct {
	Key           string          `json:"key" binding:"required"`
	Rate          decimal.Decimal `json:"rate"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
	Description   string          `json:"description"`
	UpdatedBy     string          `json:"updatedBy"`
}

// UpdatePricingRequest changes the rate of an existing key.
type UpdatePricingRequest struct {
	Rate      decimal.Decimal `json:"rate"`
	UpdatedBy string          `json:"updatedBy"`
	Reason    string          `json:"reason"`
}

// BulkUpdatePricingRequest applies several key -> rate changes at once.
type BulkUpdatePricingRequest struct {
	Rates     map[string]decimal.Decimal `json:"rates" binding:"required"`
	UpdatedBy string                     `json:"updatedBy"`
	Reason    string                     `json:"reason"`
}

// QuoteQuery is bound from the GET /v1/pricing/quote query.
type QuoteQuery struct {
	Region       string  `form:"region"`
	PropertyType string  `form:"propertyType"`
	Season       string  `form:"season"`
	LaborKey     string  `form:"laborKey"`
	MaterialKey  string  `form:"materialKey"`
	ServiceKey   string  `form:"serviceKey"`
	Quantity     float64 `form:"quantity"`
}

// ResolveQuantity defaults to one unit.
func (q QuoteQuery) ResolveQuantity() decimal.Decimal {
	if q.Quantity == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(q.Quantity)
}

// PriceCalculationQuery is bound from GET /v1/pricing/calculate/{kind}.
// Key names the labor, material or service item; the total calculation
// reads LaborKey and MaterialKey instead.
type PriceCalculationQuery struct {
	Region       string  `form:"region"`
	PropertyType string  `form:"propertyType"`
	Season       string  `form:"season"`
	Key          string  `form:"key"`
	LaborKey     string  `form:"laborKey"`
	MaterialKey  string  `form:"materialKey"`
	Quantity     float64 `form:"quantity"`
}

// ResolveQuantity defaults to one unit.
func (q PriceCalculationQuery) ResolveQuantity() decimal.Decimal {
	return QuoteQuery{Quantity: q.Quantity}.ResolveQuantity()
}

// HistoryQuery is bound from the price history query string. Dates accept
// RFC 3339 or YYYY-MM-DD; a bare To date covers the whole day.
type HistoryQuery struct {
	ItemID       string `form:"itemId"`
	ItemType     string `form:"itemType"`
	Region       string `form:"region"`
	PropertyType string `form:"propertyType"`
	Season       string `form:"season"`
	From         string `form:"from"`
	To           string `form:"to"`
}

func (q HistoryQuery) ResolveRange() (time.Time, time.Time, error) {
	from, _, err := parseDate(q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseDate(q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func parseDate(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, ErrInvalidDate
}
