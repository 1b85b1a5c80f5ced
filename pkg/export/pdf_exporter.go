package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Field is a labelled value on a summary page.
type Field struct {
	Label string
	Value string
}

// Section groups fields under a heading.
type Section struct {
	Heading string
	Fields  []Field
}

// Summary is a single-document key/value report, e.g. a vendor registration.
type Summary struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Sections    []Section
}

// PDFExporter renders summaries into PDF bytes.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderSummary lays out each section as a two-column label/value table.
func (e *PDFExporter) RenderSummary(doc Summary) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("pdf summary requires a title")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	}
	if !doc.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, "Generated "+doc.GeneratedAt.UTC().Format(time.RFC1123), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	const labelWidth, valueWidth = 55.0, 125.0
	for _, section := range doc.Sections {
		if len(section.Fields) == 0 {
			continue
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(230, 236, 245)
		pdf.CellFormat(0, 8, tr(section.Heading), "", 1, "L", true, 0, "")

		for _, field := range section.Fields {
			value := field.Value
			if value == "" {
				value = "-"
			}
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(labelWidth, 6, tr(field.Label), "B", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(valueWidth, 6, tr(value), "B", "L", false)
		}
		pdf.Ln(3)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
