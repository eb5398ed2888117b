package entities

import "github.com/shopspring/decimal"

// GenerationRequest carries the inputs a generator needs for one proposal.
// It is built once per request and never modified.
type GenerationRequest struct {
	ClientName        string
	PropertyType      string
	PropertySize      decimal.Decimal
	Region            string
	Budget            decimal.Decimal
	RequestedServices []string
	SiteAnalysis      string
}
