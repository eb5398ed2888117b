// Package pricing computes multipliers and costs for catalog items.
//
// The engine is pure: it holds immutable tables and a clock and performs no
// I/O, so one instance is shared by every request. Results are never rounded;
// callers round with Round when presenting amounts.
package pricing

import (
	"time"

	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Engine is safe for concurrent use.
type Engine struct {
	tables Tables
	now    func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used for the seasonal multiplier.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(tables Tables, opts ...Option) *Engine {
	e := &Engine{
		tables: tables.clone(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// RegionalMultiplier returns 1 for unknown regions.
func (e *Engine) RegionalMultiplier(region string) decimal.Decimal {
	return lookup(e.tables.Regional, region)
}

// PropertyTypeMultiplier returns 1 for unknown property types.
func (e *Engine) PropertyTypeMultiplier(propertyType string) decimal.Decimal {
	return lookup(e.tables.PropertyType, propertyType)
}

func (e *Engine) SeasonalMultiplier(at time.Time) decimal.Decimal {
	return lookup(e.tables.Seasonal, SeasonFor(at))
}

// SeasonMultiplier looks a season up by name.
func (e *Engine) SeasonMultiplier(season string) decimal.Decimal {
	return lookup(e.tables.Seasonal, season)
}

// CombinedMultiplier is regional * property type * seasonal.
func (e *Engine) CombinedMultiplier(region, propertyType, season string) decimal.Decimal {
	return e.RegionalMultiplier(region).
		Mul(e.PropertyTypeMultiplier(propertyType)).
		Mul(e.SeasonMultiplier(season))
}

// LaborCost = laborCost * quantity * regional * 1 * seasonal(now).
// The property type factor is neutral for labor.
func (e *Engine) LaborCost(s entities.Service, region string) decimal.Decimal {
	return s.LaborCost.
		Mul(s.Quantity).
		Mul(e.RegionalMultiplier(region)).
		Mul(one).
		Mul(e.SeasonalMultiplier(e.now()))
}

// MaterialCost = unitPrice * quantity * regional * seasonal(now).
func (e *Engine) MaterialCost(m entities.Material, quantity decimal.Decimal, region string) decimal.Decimal {
	return m.UnitPrice.
		Mul(quantity).
		Mul(e.RegionalMultiplier(region)).
		Mul(e.SeasonalMultiplier(e.now()))
}

// ServiceCost = basePrice * quantity + LaborCost + sum of required material totals.
func (e *Engine) ServiceCost(s entities.Service, region string) decimal.Decimal {
	total := s.BasePrice.Mul(s.Quantity).Add(e.LaborCost(s, region))
	for _, m := range s.RequiredMaterials {
		total = total.Add(m.TotalCost)
	}
	return total
}

// PriceMaterial returns a copy with TotalCost computed for its own quantity.
func (e *Engine) PriceMaterial(m entities.Material, region string) entities.Material {
	m.TotalCost = e.MaterialCost(m, m.Quantity, region)
	return m
}

// PriceService returns a priced copy of a catalog service: required
// materials are priced, LaborCost becomes the extended labor amount and
// TotalCost = basePrice*quantity + LaborCost + MaterialCost.
//
// The input must carry catalog rates; pricing an already priced service
// compounds the labor multipliers.
func (e *Engine) PriceService(s entities.Service, region string) entities.Service {
	out := s
	if len(s.RequiredMaterials) > 0 {
		out.RequiredMaterials = make([]entities.Material, len(s.RequiredMaterials))
		for i, m := range s.RequiredMaterials {
			out.RequiredMaterials[i] = e.PriceMaterial(m, region)
		}
	}
	materials := decimal.Zero
	for _, m := range out.RequiredMaterials {
		materials = materials.Add(m.TotalCost)
	}
	out.LaborCost = e.LaborCost(s, region)
	out.MaterialCost = materials
	out.TotalCost = s.BasePrice.Mul(s.Quantity).Add(out.LaborCost).Add(out.MaterialCost)
	return out
}

// AggregateTotal sums material and service totals.
func AggregateTotal(materials []entities.Material, services []entities.Service) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.TotalCost)
	}
	for _, s := range services {
		total = total.Add(s.TotalCost)
	}
	return total
}

// Round rounds to cents for presentation.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount with two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
