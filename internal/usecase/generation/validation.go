package generation

import "strings"

// RequiredSections are the markers every generated proposal must contain.
var RequiredSections = []string{
	"## 1. EXECUTIVE SUMMARY",
	"## 2. SITE ANALYSIS",
	"## 3. DESIGN CONCEPT",
	"## 4. SCOPE OF WORK",
	"## 5. MATERIALS AND EQUIPMENT",
	"## 6. COST BREAKDOWN",
	"## 7. TIMELINE",
	"## 8. MAINTENANCE PLAN",
	"## 9. TERMS AND CONDITIONS",
}

const (
	CostTableHeader = "| Cost Category | Amount |"
	TotalCostMarker = "**Total Cost**"
)

// ValidationResult lists the structural findings of a generated document.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateStructure checks the markers a proposal document must carry.
// The result is advisory; it never fails a generation.
func ValidateStructure(text string) ValidationResult {
	var errs []string
	for _, section := range RequiredSections {
		if !strings.Contains(text, section) {
			errs = append(errs, "Missing section: "+section)
		}
	}
	if !strings.Contains(text, CostTableHeader) {
		errs = append(errs, "Missing cost breakdown table")
	}
	if !strings.Contains(text, TotalCostMarker) {
		errs = append(errs, "Missing bold formatting for total cost")
	}
	if !hasBullet(text) {
		errs = append(errs, "Missing bullet points in sections")
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func hasBullet(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			return true
		}
	}
	return false
}

// stripCodeFences removes a markdown fence wrapped around the whole document.
func stripCodeFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	if i := strings.Index(t, "\n"); i >= 0 {
		t = t[i+1:]
	} else {
		return ""
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
