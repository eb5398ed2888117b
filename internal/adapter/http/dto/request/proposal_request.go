package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GenerateProposalRequest is the POST /v1/proposals payload.
// Amounts accept JSON numbers or numeric strings and keep their exact
// decimal value.
type GenerateProposalRequest struct {
	PropertyType      string          `json:"propertyType" binding:"required"`
	PropertySize      decimal.Decimal `json:"propertySize"`
	Region            string          `json:"region" binding:"required"`
	Budget            decimal.Decimal `json:"budget"`
	RequestedServices []string        `json:"requestedServices"`
	ClientName        string          `json:"clientName"`
	ClientPhone       string          `json:"clientPhone"`
	ClientEmail       string          `json:"clientEmail"`
	SiteAnalysis      string          `json:"siteAnalysis"`
	Model             string          `json:"model"`
}

// ResolveServices drops blank entries and duplicates, keeping request order.
func (r GenerateProposalRequest) ResolveServices() []string {
	return uniqueTrimmed(r.RequestedServices)
}

// UpdateProposalRequest is the PUT /v1/proposals/{id} payload. ID is
// optional; when present it must match the path.
type UpdateProposalRequest struct {
	ID           string          `json:"id"`
	PropertyType string          `json:"propertyType" binding:"required"`
	PropertySize decimal.Decimal `json:"propertySize"`
	Region       string          `json:"region" binding:"required"`
	Budget       decimal.Decimal `json:"budget"`
	Body         string          `json:"body"`
	Status       string          `json:"status"`
	ClientName   string          `json:"clientName"`
	ClientPhone  string          `json:"clientPhone"`
	ClientEmail  string          `json:"clientEmail"`
	SiteAnalysis string          `json:"siteAnalysis"`
	ProjectScope string          `json:"projectScope"`
}

// ResolveID returns the payload id, or pathID when the payload has none.
// ok is false when both are set and differ.
func (r UpdateProposalRequest) ResolveID(pathID string) (string, bool) {
	pathID = strings.TrimSpace(pathID)
	bodyID := strings.TrimSpace(r.ID)
	if bodyID == "" {
		return pathID, true
	}
	return bodyID, bodyID == pathID
}

func uniqueTrimmed(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
