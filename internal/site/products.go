package site

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/techbucket/techbucket-web/internal/catalog"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type productsView struct {
	webserver.Page
	Categories []string
	Category   string
	Query      string
	Products   []domain.PublicProduct
}

const (
	stepUp   = "inc"
	stepDown = "dec"
)

type quoteView struct {
	webserver.Page
	Product domain.PublicProduct
	Form    leads.QuoteForm
	Stepper leads.Stepper
	Receipt *leads.Receipt
}

func registerProductRoutes(srv *webserver.Server, h *handlers) {
	srv.GET("/products", h.products)
	srv.GET("/products/:id/quote", h.quote)
	srv.POST("/products/:id/quote", h.postQuote)
}

// products lists the catalog filtered by ?category= and ?q=.
func (h *handlers) products(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = catalog.All
	}
	query := c.QueryParam("q")
	return c.Render(http.StatusOK, "site/products", &productsView{
		Page:       webserver.Page{Title: "Products", Nav: "products"},
		Categories: h.catalog.Categories,
		Category:   category,
		Query:      query,
		Products:   catalog.Filter(h.catalog.Products, category, query),
	})
}

func (h *handlers) product(c echo.Context) (domain.PublicProduct, error) {
	id, ok := parseID(c)
	if !ok {
		return domain.PublicProduct{}, echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	p, found := h.catalog.Product(id)
	if !found {
		return p, echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return p, nil
}

// quote shows the quote form. ?quantity= seeds the stepper and is clamped
// to the minimum.
func (h *handlers) quote(c echo.Context) error {
	p, err := h.product(c)
	if err != nil {
		return err
	}
	view := &quoteView{
		Page:    webserver.Page{Title: "Request a Quote", Nav: "products"},
		Product: p,
		Form:    leads.NewQuoteForm(p.Name),
	}
	view.Receipt = h.receipt(c, domain.KindQuote, &view.Page)
	view.Stepper = leads.NewStepper(cast.ToInt(c.QueryParam("quantity")))
	view.Form.Quantity = view.Stepper.Value()
	return c.Render(http.StatusOK, "site/quote", view)
}

func (h *handlers) postQuote(c echo.Context) error {
	p, err := h.product(c)
	if err != nil {
		return err
	}
	var form leads.QuoteForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read the quote form")
	}
	form.ProductName = p.Name
	view := &quoteView{
		Page:    webserver.Page{Title: "Request a Quote", Nav: "products"},
		Product: p,
		Form:    form,
	}

	// The stepper posts the whole form so typed fields survive a quantity change.
	if op := c.FormValue("op"); op == stepUp || op == stepDown {
		stepper := leads.NewStepper(form.Quantity)
		if op == stepUp {
			stepper.Increment()
		} else {
			stepper.Decrement()
		}
		view.Stepper = stepper
		view.Form.Quantity = stepper.Value()
		return c.Render(http.StatusOK, "site/quote", view)
	}

	r, err := h.leads.SubmitQuote(c.Request().Context(), form)
	if err != nil {
		view.Stepper = leads.NewStepper(form.Quantity)
		view.Error = submitError(err, "Error submitting quote request. Please try again.")
		return c.Render(http.StatusOK, "site/quote", view)
	}
	if r.Message == "" {
		r.Message = "Our sales team will contact you soon."
	}
	return confirm(c, r, fmt.Sprintf("/products/%d/quote", p.ID))
}
