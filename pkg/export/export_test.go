package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/stockpilot/internal/domain"
)

func sampleProducts() []domain.Product {
	created := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Rice", Quantity: 2, WeightUnit: "kg", Amount: 150.00, UserID: 7, CreatedAt: created},
		{ID: 2, Name: "Milk", Quantity: 1, WeightUnit: "l", Amount: 60.00, UserID: 7, CreatedAt: created.Add(time.Hour)},
	}
}

func TestProductsPDF(t *testing.T) {
	data, err := ProductsPDF(sampleProducts(), "admin", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must start with a PDF header")
}

func TestProductsPDFEmptySet(t *testing.T) {
	data, err := ProductsPDF(nil, "admin", time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestProductsExcel(t *testing.T) {
	data, err := ProductsExcel(sampleProducts(), "admin", time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	// header band
	assert.Equal(t, "Product Name", f.GetCellValue(SheetName, "A1"))
	assert.Equal(t, "Quantity", f.GetCellValue(SheetName, "B1"))
	assert.Equal(t, "Amount", f.GetCellValue(SheetName, "C1"))
	assert.Equal(t, "Date Added", f.GetCellValue(SheetName, "D1"))

	// data rows
	assert.Equal(t, "Rice", f.GetCellValue(SheetName, "A2"))
	assert.Equal(t, "2kg", f.GetCellValue(SheetName, "B2"))
	assert.Equal(t, "150.00", f.GetCellValue(SheetName, "C2"))
	assert.Equal(t, "Mar 05, 2024", f.GetCellValue(SheetName, "D2"))
	assert.Equal(t, "Milk", f.GetCellValue(SheetName, "A3"))
	assert.Equal(t, "1l", f.GetCellValue(SheetName, "B3"))

	// summary two rows below the last data row
	assert.Equal(t, "Total Products", f.GetCellValue(SheetName, "A5"))
	assert.Equal(t, "2", f.GetCellValue(SheetName, "B5"))
	assert.Equal(t, "Total Value", f.GetCellValue(SheetName, "A6"))
	assert.Equal(t, "210.00", f.GetCellValue(SheetName, "B6"))
}

// Exporting a filtered subset must summarize exactly that subset.
func TestProductsExcelFilteredSubset(t *testing.T) {
	subset := sampleProducts()[:1]
	data, err := ProductsExcel(subset, "admin", time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "Rice", f.GetCellValue(SheetName, "A2"))
	assert.Equal(t, "", f.GetCellValue(SheetName, "A3"))
	assert.Equal(t, "Total Products", f.GetCellValue(SheetName, "A4"))
	assert.Equal(t, "1", f.GetCellValue(SheetName, "B4"))
	assert.Equal(t, "Total Value", f.GetCellValue(SheetName, "A5"))
	assert.Equal(t, "150.00", f.GetCellValue(SheetName, "B5"))
}

func TestSummaryCoversAllRecords(t *testing.T) {
	products := make([]domain.Product, 0, 30)
	var want float64
	for i := 0; i < 30; i++ {
		amount := float64(i) * 1.25
		want += amount
		products = append(products, domain.Product{
			ID:         int64(i + 1),
			Name:       fmt.Sprintf("item-%02d", i),
			Quantity:   1,
			WeightUnit: "g",
			Amount:     amount,
			CreatedAt:  time.Now(),
		})
	}
	assert.InDelta(t, want, totalAmount(products), 0.0001)
}
