package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"urltrust/internal/domain"
)

// WritePDF renders a single-check analysis report.
func WritePDF(w io.Writer, rec domain.CheckRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "URL Security Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC1123)), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(30, 8, "URL:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 8, rec.URL, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(30, 8, "Verdict:", "", 0, "L", false, 0, "")
	r, g, b := verdictColor(rec.Verdict)
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, string(rec.Verdict), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(30, 8, "Risk Score:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d/100", rec.Score), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Analysis Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, reason := range rec.Reasons {
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, reason), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(30, 8, "Checked At:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, rec.CheckedAt.UTC().Format(time.RFC1123), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "This report was generated by URL Trust Checker", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func verdictColor(v domain.Verdict) (r, g, b int) {
	switch v {
	case domain.VerdictSafe:
		return 0, 128, 0
	case domain.VerdictSuspicious:
		return 255, 140, 0
	default:
		return 200, 0, 0
	}
}
