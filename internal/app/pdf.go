package app

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/condordocs/internal/docs"
)

// writeReferencePDF renders the scraped command reference as a minimal PDF:
// one bold heading per command, its brief as a paragraph, and each synopsis
// form on its own monospaced line. This is intentionally simple and does
// not attempt full manual layout.
func writeReferencePDF(cmds []*docs.CommandDoc, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Command Reference", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, c := range cmds {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, c.Name, "", 1, "L", false, 0, "")
		if c.Brief != nil && *c.Brief != "" {
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5, *c.Brief, "", "L", false)
		}
		if len(c.Synopsis) > 0 {
			pdf.SetFont("Courier", "", 10)
			for _, s := range c.Synopsis {
				pdf.MultiCell(0, 5, c.Name+" "+s, "", "L", false)
			}
		}
		pdf.Ln(3)
	}
	return pdf.OutputFileAndClose(outPath)
}
