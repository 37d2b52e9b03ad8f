package adminweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/internal/webserver"
)

// RequireLogin admits only authenticated sessions.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if webserver.CurrentUser(c) == nil {
			webserver.SetFlash(c, "warning", "You must be logged in to access this page.")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireAdmin admits only authenticated sessions whose role grants product
// management. Both gates redirect to login with a warning.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := webserver.CurrentUser(c)
		if user == nil {
			webserver.SetFlash(c, "warning", "You must be logged in to access this page.")
			return c.Redirect(http.StatusFound, "/login")
		}
		if !user.Role.Can(domain.PermManageProducts) {
			webserver.SetFlash(c, "warning", "No permission to access this page.")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
