package generation

import (
	"strings"
	"testing"
)

const wellFormedProposal = `# Remodeling Proposal

## 1. EXECUTIVE SUMMARY
- Full kitchen remodel for the client.

## 2. SITE ANALYSIS
- Existing cabinets are worn.

## 3. DESIGN CONCEPT
- Open layout with an island.

## 4. SCOPE OF WORK
- Demolition and installation.

## 5. MATERIALS AND EQUIPMENT
- Quartz countertops.

## 6. COST BREAKDOWN
| Cost Category | Amount |
|---|---|
| Services | $41,500.00 |
| Materials | $550.00 |

**Total Cost**: $42,050.00

## 7. TIMELINE
- Six weeks.

## 8. MAINTENANCE PLAN
- Annual inspection.

## 9. TERMS AND CONDITIONS
- 50% deposit.
`

func TestValidateStructure(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		res := ValidateStructure(wellFormedProposal)
		if !res.Valid || len(res.Errors) != 0 {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("unstructured text", func(t *testing.T) {
		res := ValidateStructure("We will remodel your kitchen for a fair price.")
		if res.Valid {
			t.Fatalf("expected invalid")
		}
		if len(res.Errors) < 9 {
			t.Fatalf("expected at least 9 findings, got %d", len(res.Errors))
		}
		if len(res.Errors) != 12 {
			t.Fatalf("expected 12 findings, got %d: %v", len(res.Errors), res.Errors)
		}
		if res.Errors[0] != "Missing section: ## 1. EXECUTIVE SUMMARY" {
			t.Fatalf("unexpected first finding %q", res.Errors[0])
		}
	})

	t.Run("single missing element", func(t *testing.T) {
		doc := strings.Replace(wellFormedProposal, "**Total Cost**", "Total Cost", 1)
		res := ValidateStructure(doc)
		if res.Valid || len(res.Errors) != 1 || res.Errors[0] != "Missing bold formatting for total cost" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("missing table and bullets", func(t *testing.T) {
		doc := strings.ReplaceAll(wellFormedProposal, "- ", "")
		doc = strings.Replace(doc, CostTableHeader, "", 1)
		res := ValidateStructure(doc)
		want := []string{"Missing cost breakdown table", "Missing bullet points in sections"}
		if len(res.Errors) != len(want) {
			t.Fatalf("unexpected findings %v", res.Errors)
		}
		for i := range want {
			if res.Errors[i] != want[i] {
				t.Fatalf("expected %q, got %q", want[i], res.Errors[i])
			}
		}
	})
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"plain text":                  "plain text",
		"```markdown\n## A\n- b\n```": "## A\n- b",
		"```html\n<p>x</p>\n```\n":    "<p>x</p>",
		"```":                         "",
		"  ```\nbody\n```  ":          "body",
	}
	for in, want := range cases {
		if got := stripCodeFences(in); got != want {
			t.Fatalf("stripCodeFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPortfolioImages(t *testing.T) {
	if got := PortfolioImages("Commercial"); len(got) != 3 || got[0] != "/img/commercial-office1.jpg" {
		t.Fatalf("unexpected images %v", got)
	}
	if got := PortfolioImages("boathouse"); got[2] != "/img/remodeling-project3.jpg" {
		t.Fatalf("expected generic fallback, got %v", got)
	}
	imgs := PortfolioImages("industrial")
	imgs[0] = "changed"
	if PortfolioImages("industrial")[0] != "/img/industrial-warehouse1.jpg" {
		t.Fatalf("returned slice must be a copy")
	}
}
