package llm

import (
	"context"
	"time"
)

const mockProposal = `# Remodeling Proposal

## 1. EXECUTIVE SUMMARY
- Complete remodeling of the requested areas using licensed and insured crews.
- Work follows local building codes and our company quality standards.

## 2. SITE ANALYSIS
- The property is structurally sound and suitable for the requested work.
- Existing finishes are dated and will be removed before installation.

## 3. DESIGN CONCEPT
- Clean, functional layout with durable, easy-care finishes.
- Eco-friendly material options offered where available.

## 4. SCOPE OF WORK
- Site protection, demolition and debris removal.
- Installation of the requested services and final finishing.

## 5. MATERIALS AND EQUIPMENT
- High-quality materials sourced from approved suppliers.
- Professional-grade equipment operated by certified staff.

## 6. COST BREAKDOWN
| Cost Category | Amount |
|---|---|
| Labor | Included |
| Materials | Included |
| Permits | As required |

**Total Cost**: as quoted in the services breakdown.

## 7. TIMELINE
- Week 1: mobilization and demolition.
- Weeks 2-5: installation and inspections.
- Week 6: finishing and walkthrough.

## 8. MAINTENANCE PLAN
- Quarterly inspection during the first year.
- Care guide delivered at handover.

## 9. TERMS AND CONDITIONS
- 30% deposit, 40% at mid-project, 30% on completion.
- Workmanship warranty of 2 years.
- Proposal valid for 30 days.
`

// MockClient returns a canned, well-formed proposal.
type MockClient struct {
	delay time.Duration
}

func NewMockClient(delay time.Duration) *MockClient {
	return &MockClient{delay: delay}
}

func (c *MockClient) Model() string {
	return "mock"
}

func (c *MockClient) Available() bool {
	return true
}

func (c *MockClient) Complete(ctx context.Context, _ string) (string, error) {
	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	return mockProposal, nil
}
