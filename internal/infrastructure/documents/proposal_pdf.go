// Package documents renders proposals and price history into downloadable
// files.
package documents

import (
	"fmt"
	"io"
	"strings"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 5.5
)

// WriteProposalPDF renders a proposal as an A4 PDF. The markdown body is
// rendered line by line: headings bold, bullets indented, table rows in a
// monospace font, emphasis markers dropped.
func WriteProposalPDF(w io.Writer, p entities.Proposal) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Remodeling Proposal "+p.ID, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Remodeling Proposal", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range proposalMeta(p) {
		pdf.CellFormat(contentW, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
	pdf.Ln(3)

	// Body
	for _, raw := range strings.Split(p.Body, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(2)
		case strings.HasPrefix(trimmed, "#"):
			pdf.Ln(1)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(contentW, 6.5, tr(plainText(strings.TrimLeft(trimmed, "# "))), "", "L", false)
		case strings.HasPrefix(trimmed, "|"):
			if isTableRule(trimmed) {
				continue
			}
			pdf.SetFont("Courier", "", 8)
			pdf.MultiCell(contentW, 4.5, tr(plainText(trimmed)), "", "L", false)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdfMargin + 4)
			pdf.MultiCell(contentW-4, pdfLineHeight, tr("- "+plainText(trimmed[2:])), "", "L", false)
		default:
			style := ""
			if strings.HasPrefix(trimmed, "**") {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.MultiCell(contentW, pdfLineHeight, tr(plainText(trimmed)), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render proposal: %w", err)
	}
	return nil
}

func proposalMeta(p entities.Proposal) []string {
	lines := []string{
		"Proposal: " + p.ID,
		fmt.Sprintf("Client: %s", orDash(p.ClientName)),
		fmt.Sprintf("Property: %s, %s sq ft, %s region", p.PropertyType, p.PropertySize.String(), p.Region),
		fmt.Sprintf("Budget: $%s   Total: $%s", pricing.Format(p.Budget), pricing.Format(p.TotalCost)),
		fmt.Sprintf("Status: %s   Created: %s", p.Status, p.CreatedAt.Format("2006-01-02")),
	}
	if p.ValidUntil != nil {
		lines = append(lines, "Valid until: "+p.ValidUntil.Format("2006-01-02"))
	}
	return lines
}

func plainText(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}

func isTableRule(line string) bool {
	return strings.Trim(line, "|-: ") == ""
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
