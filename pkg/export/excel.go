package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"github.com/talkincode/stockpilot/internal/domain"
)

// SheetName is the single worksheet both readers and tests rely on.
const SheetName = "Products"

var excelColAxes = []string{"A", "B", "C", "D"}

// ProductsExcel renders the full filtered product set as an xlsx workbook
// with the same header, row and summary semantics as the PDF encoder. The
// summary sits two rows below the last data row, in bold.
func ProductsExcel(products []domain.Product, owner string, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)
	f.SetColWidth(SheetName, "A", "A", 36)
	f.SetColWidth(SheetName, "B", "D", 18)

	bold, err := f.NewStyle(`{"font":{"bold":true}}`)
	if err != nil {
		return nil, errors.Wrap(err, "create bold style")
	}

	for i, col := range columns {
		f.SetCellValue(SheetName, excelColAxes[i]+"1", col)
	}
	f.SetCellStyle(SheetName, "A1", "D1", bold)

	row := 2
	for _, p := range products {
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), p.WeightDisplay())
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), p.AmountDisplay())
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), p.DateDisplay())
		row++
	}

	// summary block two rows below the last data row
	srow := row + 1
	f.SetCellValue(SheetName, fmt.Sprintf("A%d", srow), "Total Products")
	f.SetCellValue(SheetName, fmt.Sprintf("B%d", srow), len(products))
	f.SetCellValue(SheetName, fmt.Sprintf("A%d", srow+1), "Total Value")
	f.SetCellValue(SheetName, fmt.Sprintf("B%d", srow+1), formatAmount(totalAmount(products)))
	f.SetCellStyle(SheetName, fmt.Sprintf("A%d", srow), fmt.Sprintf("B%d", srow+1), bold)
	f.SetCellValue(SheetName, fmt.Sprintf("A%d", srow+3),
		fmt.Sprintf("Generated on %s for %s", now.Format(timestampLayout), owner))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write xlsx workbook")
	}
	return buf.Bytes(), nil
}
