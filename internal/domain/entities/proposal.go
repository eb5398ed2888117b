package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a proposal.
//
// Generation always yields Draft; every other value is reached only through
// an explicit update.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "Draft"
	ProposalStatusSent     ProposalStatus = "Sent"
	ProposalStatusAccepted ProposalStatus = "Accepted"
	ProposalStatusRejected ProposalStatus = "Rejected"
	ProposalStatusExpired  ProposalStatus = "Expired"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired:
		return true
	}
	return false
}

// ProposalValidity is the default window between creation and ValidUntil.
const ProposalValidity = 30 * 24 * time.Hour

// Proposal is the persisted proposal aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Proposals are treated as values: the With* helpers return updated copies.
type Proposal struct {
	ID                string           `json:"id"`
	PropertyType      string           `json:"property_type"`
	PropertySize      decimal.Decimal  `json:"property_size"`
	Region            string           `json:"region"`
	Budget            decimal.Decimal  `json:"budget"`
	RequestedServices []string         `json:"requested_services"`
	Body              string           `json:"body"`
	Status            ProposalStatus   `json:"status"`
	Model             string           `json:"model"`
	TotalCost         decimal.Decimal  `json:"total_cost"`
	CreatedAt         time.Time        `json:"created_at"`
	ValidUntil        *time.Time       `json:"valid_until,omitempty"`
	ClientName        string           `json:"client_name"`
	ClientPhone       string           `json:"client_phone"`
	ClientEmail       string           `json:"client_email"`
	SiteAnalysis      string           `json:"site_analysis,omitempty"`
	ProjectScope      string           `json:"project_scope,omitempty"`
	EstimatedDuration *decimal.Decimal `json:"estimated_duration,omitempty"`
	RequiredPermits   []string         `json:"required_permits"`
}

// WithClient returns a copy carrying the given client contact fields.
func (p Proposal) WithClient(name, phone, email string) Proposal {
	out := p.clone()
	out.ClientName = strings.TrimSpace(name)
	out.ClientPhone = strings.TrimSpace(phone)
	out.ClientEmail = strings.TrimSpace(email)
	return out
}

// WithUpdates returns a copy of p with the mutable fields taken from u.
// Identity, creation time, validity and generation metadata are kept.
func (p Proposal) WithUpdates(u Proposal) Proposal {
	out := p.clone()
	out.PropertyType = u.PropertyType
	out.Region = u.Region
	out.PropertySize = u.PropertySize
	out.Body = u.Body
	out.Status = u.Status
	out.Budget = u.Budget
	out = out.WithClient(
		keepIfBlank(u.ClientName, out.ClientName),
		keepIfBlank(u.ClientPhone, out.ClientPhone),
		keepIfBlank(u.ClientEmail, out.ClientEmail),
	)
	if u.SiteAnalysis != "" {
		out.SiteAnalysis = u.SiteAnalysis
	}
	if u.ProjectScope != "" {
		out.ProjectScope = u.ProjectScope
	}
	return out
}

// Expired reports whether the validity window closed before now.
func (p Proposal) Expired(now time.Time) bool {
	return p.ValidUntil != nil && now.After(*p.ValidUntil)
}

// Copy returns a deep copy of p.
func (p Proposal) Copy() Proposal {
	return p.clone()
}

func (p Proposal) clone() Proposal {
	out := p
	if p.RequestedServices != nil {
		out.RequestedServices = append([]string(nil), p.RequestedServices...)
	}
	if p.RequiredPermits != nil {
		out.RequiredPermits = append([]string(nil), p.RequiredPermits...)
	}
	if p.ValidUntil != nil {
		v := *p.ValidUntil
		out.ValidUntil = &v
	}
	if p.EstimatedDuration != nil {
		d := *p.EstimatedDuration
		out.EstimatedDuration = &d
	}
	return out
}

func keepIfBlank(value, current string) string {
	if strings.TrimSpace(value) == "" {
		return current
	}
	return value
}

func containsFold(values []string, target string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
