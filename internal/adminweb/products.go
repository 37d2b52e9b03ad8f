package adminweb

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/internal/webserver"
	"github.com/talkincode/stockpilot/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// productForm carries the raw create/update fields plus their parsed values.
type productForm struct {
	Name       string `form:"name"`
	Quantity   string `form:"quantity"`
	WeightUnit string `form:"weight_unit"`
	Amount     string `form:"amount"`

	quantity float64
	amount   float64
}

// validate checks the form and returns per-field error messages.
func (f *productForm) validate() map[string]string {
	errs := map[string]string{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name is required."
	} else if len(f.Name) > 200 {
		errs["name"] = "Name must be at most 200 characters."
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(f.Quantity), 64)
	if err != nil || qty <= 0 {
		errs["quantity"] = "Quantity must be a number greater than zero."
	} else {
		f.quantity = qty
	}

	if !domain.ValidWeightUnit(f.WeightUnit) {
		errs["weight_unit"] = "Select a valid unit."
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil || amount < 0 {
		errs["amount"] = "Amount must be a non-negative number."
	} else {
		f.amount = amount
	}

	return errs
}

func (f *productForm) values() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"quantity":    f.Quantity,
		"weight_unit": f.WeightUnit,
		"amount":      f.Amount,
	}
}

func renderProductForm(c echo.Context, title, action string, form *productForm, fieldErrors map[string]string) error {
	return c.Render(http.StatusOK, "product_form.html", echo.Map{
		"title":  title,
		"action": action,
		"form":   form.values(),
		"errors": fieldErrors,
		"units":  domain.WeightUnits,
	})
}

type productJSON struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	Amount    string `json:"amount"`
	DateAdded string `json:"date_added"`
	UpdateURL string `json:"update_url"`
	DeleteURL string `json:"delete_url"`
}

func listProducts(c echo.Context) error {
	user := webserver.CurrentUser(c)
	search := strings.TrimSpace(c.QueryParam("search"))
	page := cast.ToInt(c.QueryParam("page"))

	rows, err := repo(c).ListByOwner(c.Request().Context(), user.ID, search)
	if err != nil {
		zap.L().Error("failed to query products", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to query products")
	}

	items, meta := pagination.Paginate(rows, page, webserver.App(c).PageSize())

	if webserver.IsAjax(c) {
		payload := make([]productJSON, 0, len(items))
		for _, p := range items {
			payload = append(payload, productJSON{
				ID:        p.ID,
				Name:      p.Name,
				Weight:    p.WeightDisplay(),
				Amount:    p.AmountDisplay(),
				DateAdded: p.DateDisplay(),
				UpdateURL: fmt.Sprintf("/products/%d/edit", p.ID),
				DeleteURL: fmt.Sprintf("/products/%d/delete", p.ID),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{"products": payload})
	}

	return c.Render(http.StatusOK, "product_list.html", echo.Map{
		"title":    "Products",
		"products": items,
		"meta":     meta,
		"search":   search,
	})
}

func newProductForm(c echo.Context) error {
	form := &productForm{WeightUnit: domain.UnitGram}
	return renderProductForm(c, "Add Product", "/products/add", form, nil)
}

func createProduct(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse product form")
	}

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		webserver.SetFlash(c, "danger", "Form error. Please correct the fields.")
		return renderProductForm(c, "Add Product", "/products/add", &form, fieldErrors)
	}

	user := webserver.CurrentUser(c)
	p := domain.Product{
		Name:       form.Name,
		Quantity:   form.quantity,
		WeightUnit: form.WeightUnit,
		Amount:     form.amount,
		UserID:     user.ID,
	}
	if err := repo(c).Create(c.Request().Context(), &p); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}

	writeUserLog(c, "create_product", fmt.Sprintf("created product %q", p.Name))
	webserver.SetFlash(c, "success", "Product added successfully.")
	return c.Redirect(http.StatusFound, "/products")
}

func lookupOwned(c echo.Context) (*domain.Product, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	user := webserver.CurrentUser(c)
	p, err := repo(c).GetOwned(c.Request().Context(), user.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Product not found")
	} else if err != nil {
		zap.L().Error("failed to query product", zap.Error(err))
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to query product")
	}
	return p, nil
}

func editProductForm(c echo.Context) error {
	p, err := lookupOwned(c)
	if err != nil {
		return err
	}
	form := &productForm{
		Name:       p.Name,
		Quantity:   strconv.FormatFloat(p.Quantity, 'f', -1, 64),
		WeightUnit: p.WeightUnit,
		Amount:     p.AmountDisplay(),
	}
	action := fmt.Sprintf("/products/%d/edit", p.ID)
	return renderProductForm(c, "Edit Product", action, form, nil)
}

func updateProduct(c echo.Context) error {
	p, err := lookupOwned(c)
	if err != nil {
		return err
	}

	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse product form")
	}

	action := fmt.Sprintf("/products/%d/edit", p.ID)
	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		webserver.SetFlash(c, "danger", "Form error. Please correct the fields.")
		return renderProductForm(c, "Edit Product", action, &form, fieldErrors)
	}

	p.Name = form.Name
	p.Quantity = form.quantity
	p.WeightUnit = form.WeightUnit
	p.Amount = form.amount

	if err := repo(c).Update(c.Request().Context(), p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		zap.L().Error("failed to update product", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}

	writeUserLog(c, "update_product", fmt.Sprintf("updated product %q", p.Name))
	webserver.SetFlash(c, "success", "Product updated successfully.")
	return c.Redirect(http.StatusFound, "/products")
}

func confirmDeleteProduct(c echo.Context) error {
	p, err := lookupOwned(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "product_confirm_delete.html", echo.Map{
		"title":   "Delete Product",
		"product": p,
	})
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	user := webserver.CurrentUser(c)

	err = repo(c).DeleteOwned(c.Request().Context(), user.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	} else if err != nil {
		zap.L().Error("failed to delete product", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}

	writeUserLog(c, "delete_product", fmt.Sprintf("deleted product id %d", id))
	webserver.SetFlash(c, "success", "Product deleted successfully.")
	return c.Redirect(http.StatusFound, "/products")
}
