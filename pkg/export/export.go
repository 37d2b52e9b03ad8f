// Package export renders product sets into downloadable documents. Both
// encoders are pure: they take the full filtered record set and return the
// document bytes, independent of any request lifecycle.
package export

import (
	"strconv"

	"github.com/talkincode/stockpilot/internal/domain"
)

// ReportTitle is the title band used by both encoders.
const ReportTitle = "Product Inventory Report"

var columns = []string{"Product Name", "Quantity", "Amount", "Date Added"}

const timestampLayout = "Jan 02, 2006 15:04"

func totalAmount(products []domain.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Amount
	}
	return sum
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
