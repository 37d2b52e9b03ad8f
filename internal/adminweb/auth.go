package adminweb

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/internal/webserver"
	"github.com/talkincode/stockpilot/pkg/common"
	"go.uber.org/zap"
)

func loginForm(c echo.Context) error {
	if webserver.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"title":    "Sign In",
		"username": "",
	})
}

func loginSubmit(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	renderFailed := func() error {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"title":    "Sign In",
			"username": username,
			"error":    "Invalid credentials.",
		})
	}

	if username == "" || password == "" {
		return renderFailed()
	}

	var user domain.SysUser
	err := webserver.GetDB(c).
		Where("username = ? and status = ?", username, common.ENABLED).
		First(&user).Error
	if err != nil || !common.CheckPassword(user.Password, password) {
		zap.L().Warn("login failed",
			zap.String("username", username),
			zap.String("ip", c.RealIP()))
		return renderFailed()
	}

	if err := webserver.SignIn(c, &user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}

	webserver.GetDB(c).Model(&domain.SysUser{}).
		Where("id = ?", user.ID).
		Update("last_login", time.Now())
	writeUserLog(c, "login", "user signed in")

	webserver.SetFlash(c, "success", "Logged in successfully.")
	return c.Redirect(http.StatusFound, "/")
}

func logout(c echo.Context) error {
	if webserver.CurrentUser(c) != nil {
		writeUserLog(c, "logout", "user signed out")
		if err := webserver.SignOut(c); err != nil {
			zap.L().Warn("logout: session clear failed", zap.Error(err))
		}
		webserver.SetFlash(c, "info", "You have been logged out.")
	}
	return c.Redirect(http.StatusFound, "/login")
}

func home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"title": "Home",
	})
}
