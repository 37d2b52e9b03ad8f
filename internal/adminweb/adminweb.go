// Package adminweb contains the server-rendered admin interface: session
// login, product CRUD with search and pagination, and document exports.
package adminweb

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/internal/product"
	"github.com/talkincode/stockpilot/internal/webserver"
	"github.com/talkincode/stockpilot/pkg/common"
	"go.uber.org/zap"
)

// Register mounts all web routes.
func Register() {
	webserver.GET("/login", loginForm)
	webserver.POST("/login", loginSubmit)
	webserver.GET("/logout", logout)

	webserver.GET("/", home, RequireLogin)

	webserver.GET("/products", listProducts, RequireAdmin)
	webserver.GET("/products/add", newProductForm, RequireAdmin)
	webserver.POST("/products/add", createProduct, RequireAdmin)
	webserver.GET("/products/:id/edit", editProductForm, RequireAdmin)
	webserver.POST("/products/:id/edit", updateProduct, RequireAdmin)
	webserver.GET("/products/:id/delete", confirmDeleteProduct, RequireAdmin)
	webserver.POST("/products/:id/delete", deleteProduct, RequireAdmin)
	webserver.GET("/products/export/pdf", exportProductsPDF, RequireAdmin)
	webserver.GET("/products/export/excel", exportProductsExcel, RequireAdmin)
}

func repo(c echo.Context) product.Repository {
	return product.NewGormRepository(webserver.GetDB(c))
}

// writeUserLog appends an audit row; failures are logged, never surfaced.
func writeUserLog(c echo.Context, action, desc string) {
	user := webserver.CurrentUser(c)
	username := ""
	if user != nil {
		username = user.Username
	}
	err := webserver.GetDB(c).Create(&domain.SysUserLog{
		ID:        common.UUIDint64(),
		Username:  username,
		UserIp:    c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	}).Error
	if err != nil {
		zap.L().Warn("failed to write user log",
			zap.String("action", action),
			zap.Error(err))
	}
}
