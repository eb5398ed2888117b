package response

import (
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
)

type ProposalResponse struct {
	ID                string     `json:"id"`
	PropertyType      string     `json:"propertyType"`
	PropertySize      float64    `json:"propertySize"`
	Region            string     `json:"region"`
	Budget            float64    `json:"budget"`
	RequestedServices []string   `json:"requestedServices"`
	Body              string     `json:"body"`
	Status            string     `json:"status"`
	Model             string     `json:"model"`
	TotalCost         float64    `json:"totalCost"`
	CreatedAt         time.Time  `json:"createdAt"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	ClientName        string     `json:"clientName"`
	ClientPhone       string     `json:"clientPhone"`
	ClientEmail       string     `json:"clientEmail"`
	SiteAnalysis      string     `json:"siteAnalysis,omitempty"`
	ProjectScope      string     `json:"projectScope,omitempty"`
	EstimatedDuration *float64   `json:"estimatedDuration,omitempty"`
	RequiredPermits   []string   `json:"requiredPermits"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:                p.ID,
		PropertyType:      p.PropertyType,
		PropertySize:      p.PropertySize.InexactFloat64(),
		Region:            p.Region,
		Budget:            p.Budget.InexactFloat64(),
		RequestedServices: nonNilStrings(p.RequestedServices),
		Body:              p.Body,
		Status:            string(p.Status),
		Model:             p.Model,
		TotalCost:         pricing.Round(p.TotalCost).InexactFloat64(),
		CreatedAt:         p.CreatedAt,
		ValidUntil:        p.ValidUntil,
		ClientName:        p.ClientName,
		ClientPhone:       p.ClientPhone,
		ClientEmail:       p.ClientEmail,
		SiteAnalysis:      p.SiteAnalysis,
		ProjectScope:      p.ProjectScope,
		RequiredPermits:   nonNilStrings(p.RequiredPermits),
	}
	if p.EstimatedDuration != nil {
		d := p.EstimatedDuration.InexactFloat64()
		res.EstimatedDuration = &d
	}
	return res
}

func FromProposals(in []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProposal(p))
	}
	return out
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
