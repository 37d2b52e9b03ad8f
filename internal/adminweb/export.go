package adminweb

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/internal/webserver"
	"github.com/talkincode/stockpilot/pkg/export"
	"go.uber.org/zap"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// fetchExportSet returns every record matching the current owner and search
// filter. Exports are always unpaginated.
func fetchExportSet(c echo.Context) ([]domain.Product, string, error) {
	user := webserver.CurrentUser(c)
	search := strings.TrimSpace(c.QueryParam("search"))

	rows, err := repo(c).ListByOwner(c.Request().Context(), user.ID, search)
	if err != nil {
		zap.L().Error("failed to query products for export", zap.Error(err))
		return nil, "", echo.NewHTTPError(http.StatusInternalServerError, "Failed to query products")
	}
	return rows, user.Username, nil
}

func sendAttachment(c echo.Context, mime, ext string, data []byte) error {
	filename := fmt.Sprintf("products_%s.%s", time.Now().Format("20060102150405"), ext)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, mime, data)
}

func exportProductsPDF(c echo.Context) error {
	rows, owner, err := fetchExportSet(c)
	if err != nil {
		return err
	}

	data, err := export.ProductsPDF(rows, owner, time.Now())
	if err != nil {
		zap.L().Error("pdf export failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate PDF document")
	}

	writeUserLog(c, "export_products", fmt.Sprintf("exported %d products as pdf", len(rows)))
	return sendAttachment(c, "application/pdf", "pdf", data)
}

func exportProductsExcel(c echo.Context) error {
	rows, owner, err := fetchExportSet(c)
	if err != nil {
		return err
	}

	data, err := export.ProductsExcel(rows, owner, time.Now())
	if err != nil {
		zap.L().Error("excel export failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate Excel document")
	}

	writeUserLog(c, "export_products", fmt.Sprintf("exported %d products as xlsx", len(rows)))
	return sendAttachment(c, xlsxMIME, "xlsx", data)
}
