package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/talkincode/stockpilot/internal/domain"
)

var pdfColWidths = []float64{75, 35, 35, 45}

// ProductsPDF renders the full filtered product set as a tabular A4 PDF:
// title band, header row, one row per record and a summary block with the
// record count, the sum of amounts and the generation timestamp.
func ProductsPDF(products []domain.Product, owner string, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ReportTitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, ReportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Owner: "+owner, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// header band
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(pdfColWidths[i], 8, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 240, 240)
	fill := false
	for _, p := range products {
		pdf.CellFormat(pdfColWidths[0], 7, p.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfColWidths[1], 7, p.WeightDisplay(), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(pdfColWidths[2], 7, p.AmountDisplay(), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(pdfColWidths[3], 7, p.DateDisplay(), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Products: %d", len(products)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total Value: "+formatAmount(totalAmount(products)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 6, "Generated on "+now.Format(timestampLayout), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf document")
	}
	return buf.Bytes(), nil
}
