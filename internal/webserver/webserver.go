package webserver

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/talkincode/stockpilot/internal/app"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const appContextKey = "stockpilot_app"

type WebServer struct {
	root *echo.Echo
	app  *app.Application
}

var server *WebServer

// Init builds the echo engine with sessions, rendering and error handling
// wired in. Handlers are registered afterwards through GET/POST.
func Init(application *app.Application) {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newRenderer()
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())

	secret := application.Config().Web.Secret
	if secret == "" {
		secret = random.String(32)
		zap.L().Warn("web.secret not configured, sessions will not survive restarts")
	}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(secret))))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, application)
			return next(c)
		}
	})

	server = &WebServer{root: e, app: application}
}

// Listen starts the HTTP listener and blocks.
func Listen() error {
	cfg := server.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("Starting web server on %s", addr)
	return server.root.Start(addr)
}

// Echo exposes the underlying engine, mainly for tests.
func Echo() *echo.Echo {
	return server.root
}

func GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET(path, h, m...)
}

func POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST(path, h, m...)
}

// App returns the application bound to the request context.
func App(c echo.Context) *app.Application {
	return c.Get(appContextKey).(*app.Application)
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return App(c).DB()
}

// IsAjax reports whether the request declares itself a programmatic fetch.
func IsAjax(c echo.Context) bool {
	return c.Request().Header.Get(echo.HeaderXRequestedWith) == "XMLHttpRequest"
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	}

	if IsAjax(c) {
		_ = c.JSON(code, echo.Map{"error": message})
		return
	}
	if rerr := c.Render(code, "error.html", echo.Map{
		"title":   "Error",
		"code":    code,
		"message": message,
	}); rerr != nil {
		_ = c.String(code, message)
	}
}
