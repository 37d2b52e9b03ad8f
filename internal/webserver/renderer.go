package webserver

import (
	"embed"
	"html/template"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TemplateRenderer renders embedded html/template pages. Flashes and the
// current session user are injected into every map-typed data payload.
type TemplateRenderer struct {
	templates *template.Template
}

func newRenderer() *TemplateRenderer {
	t := template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
	return &TemplateRenderer{templates: t}
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if m, ok := data.(echo.Map); ok {
		if _, exists := m["flashes"]; !exists {
			m["flashes"] = Flashes(c)
		}
		if _, exists := m["user"]; !exists {
			m["user"] = CurrentUser(c)
		}
		if _, exists := m["site_title"]; !exists {
			m["site_title"] = siteTitle(c)
		}
	}
	return t.templates.ExecuteTemplate(w, name, data)
}

func siteTitle(c echo.Context) string {
	if a, ok := c.Get(appContextKey).(*app.Application); ok {
		if title := a.GetSettingsStringValue("web", "site_title"); title != "" {
			return title
		}
	}
	return "Inventory Admin"
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSerializer plugs json-iterator into echo's JSON pipeline.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsonAPI.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	return jsonAPI.NewDecoder(c.Request().Body).Decode(i)
}
