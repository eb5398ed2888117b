package generation

import (
	"fmt"
	"strings"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// SystemInstruction is sent as the system role by chat-style backends.
const SystemInstruction = "You are a professional remodeling estimator with expertise in creating detailed proposals."

// CompanyStandards are included in every prompt.
var CompanyStandards = []string{
	"Licensed and insured contractors",
	"High-quality materials and finishes",
	"Compliance with local building codes and regulations",
	"Detailed project timelines and milestones",
	"Regular client communication and updates",
	"Clean work environment and job site management",
	"Warranty on all workmanship",
	"Eco-friendly and sustainable options when available",
	"Professional design consultation",
	"Post-completion walkthrough and client satisfaction",
}

var portfolioImages = map[string][]string{
	"residential": {
		"/img/residential-kitchen1.jpg",
		"/img/residential-bathroom1.jpg",
		"/img/residential-living-room1.jpg",
	},
	"commercial": {
		"/img/commercial-office1.jpg",
		"/img/commercial-retail1.jpg",
		"/img/commercial-restaurant1.jpg",
	},
	"industrial": {
		"/img/industrial-warehouse1.jpg",
		"/img/industrial-facility1.jpg",
		"/img/industrial-office1.jpg",
	},
}

var defaultPortfolioImages = []string{
	"/img/remodeling-project1.jpg",
	"/img/remodeling-project2.jpg",
	"/img/remodeling-project3.jpg",
}

// PortfolioImages returns three reference images for the property type.
func PortfolioImages(propertyType string) []string {
	imgs, ok := portfolioImages[strings.ToLower(strings.TrimSpace(propertyType))]
	if !ok {
		imgs = defaultPortfolioImages
	}
	return append([]string(nil), imgs...)
}

type promptInput struct {
	req       entities.GenerationRequest
	materials []entities.Material
	services  []entities.Service
	total     decimal.Decimal
}

func buildPrompt(in promptInput) string {
	var b strings.Builder
	r := in.req

	fmt.Fprintf(&b, "Generate a detailed remodeling proposal for a %s square foot %s property in the %s region.\n\n",
		r.PropertySize.String(), r.PropertyType, r.Region)

	b.WriteString("Client Information:\n")
	b.WriteString(r.ClientName)
	b.WriteString("\n\n")

	b.WriteString("Current Property Assessment and Site Analysis:\n")
	b.WriteString(r.SiteAnalysis)
	b.WriteString("\n\n")

	b.WriteString("Company Standards:\n")
	for i, s := range CompanyStandards {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Budget: $%s\n", pricing.Format(r.Budget))
	names := make([]string, 0, len(in.services))
	for _, s := range in.services {
		names = append(names, s.Name)
	}
	fmt.Fprintf(&b, "Requested Services: %s\n\n", strings.Join(names, ", "))

	b.WriteString("Materials Required:\n")
	for _, m := range in.materials {
		fmt.Fprintf(&b, "- %s (%s): $%s\n", m.Name, m.Grade, pricing.Format(m.TotalCost))
	}
	b.WriteString("\n")

	b.WriteString("Services Breakdown:\n")
	for _, s := range in.services {
		fmt.Fprintf(&b, "- %s: $%s\n", s.Name, pricing.Format(s.TotalCost))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total Cost: $%s\n\n", pricing.Format(in.total))

	b.WriteString("Similar Projects Portfolio:\n")
	for _, img := range PortfolioImages(r.PropertyType) {
		fmt.Fprintf(&b, "![Similar Project](%s)\n", img)
	}
	b.WriteString("\n")

	b.WriteString("Format the proposal in markdown using exactly these section headings, in order:\n")
	for _, section := range RequiredSections {
		b.WriteString(section)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Use bullet points (\"- \") inside sections. The cost breakdown section must contain a table with the header %q and a line starting with %q.\n",
		CostTableHeader, TotalCostMarker)

	return b.String()
}
