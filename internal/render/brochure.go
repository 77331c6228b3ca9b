package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/wanderpeak/tours/internal/domain"
)

// pdfReplacer maps characters outside the core fonts' cp1252 range to
// printable stand-ins.
var pdfReplacer = strings.NewReplacer("₹", "INR ", "→", "->")

// Brochure writes a printable A4 PDF describing d and all of its packages.
func Brochure(w io.Writer, d domain.Destination) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfReplacer.Replace(s)) }

	pdf.SetTitle(d.Name+" tours", true)
	pdf.SetAuthor("Wanderpeak Tours", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, text(d.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 12)
	pdf.Cell(0, 7, text(d.Tagline))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, text(d.Summary), "", "", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	for _, line := range []string{
		"Best time: " + d.QuickFacts.BestTime,
		"Start point: " + d.QuickFacts.StartPoint,
		"Style: " + d.QuickFacts.TravelStyle,
	} {
		pdf.Cell(0, 6, text(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for i, p := range d.Packages {
		if i > 0 {
			pdf.Ln(4)
		}
		writePackage(pdf, text, p)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render.Brochure %s: %w", d.Slug, err)
	}
	return nil
}

func writePackage(pdf *gofpdf.Fpdf, text func(string) string, p domain.Package) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, text(p.Name))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	meta := []string{p.Duration, p.GroupSize, "Rating " + domain.RatingBadge(p.Rating, p.Reviews)}
	pdf.Cell(0, 6, text(strings.Join(nonEmpty(meta), "  |  ")))
	pdf.Ln(6)

	price := p.Price
	if p.HasDiscount() {
		price += " (was " + p.OldPrice + ")"
	}
	if p.Badge != "" {
		price += "  " + p.Badge
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, text(price))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, text(p.Description), "", "", false)
	for _, h := range p.Highlights {
		pdf.Cell(0, 5, text("- "+h))
		pdf.Ln(5)
	}
}

func nonEmpty(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
