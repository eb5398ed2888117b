package request

import "github.com/shopspring/decimal"

// SuggestServicesQuery is bound from the GET /v1/catalog/suggestions query.
type SuggestServicesQuery struct {
	PropertyType string  `form:"propertyType" binding:"required"`
	PropertySize float64 `form:"propertySize" binding:"required"`
	Region       string  `form:"region"`
	Budget       float64 `form:"budget"`
}

func (q SuggestServicesQuery) ResolvePropertySize() decimal.Decimal {
	return decimal.NewFromFloat(q.PropertySize)
}

func (q SuggestServicesQuery) ResolveBudget() decimal.Decimal {
	return decimal.NewFromFloat(q.Budget)
}
