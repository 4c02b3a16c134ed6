package middleware

import (
	"errors"
	"strconv"
	"strings"

	dashboard "github.com/LerianStudio/lib-dashboard-go"
	"github.com/LerianStudio/lib-dashboard-go/component"
	cn "github.com/LerianStudio/lib-dashboard-go/constant"
	libErr "github.com/LerianStudio/lib-dashboard-go/error"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	pkgHTTP "github.com/LerianStudio/lib-dashboard-go/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the read-only customization API and the reload endpoint on r.
// The startup load runs once, the first time any surface is built.
func (c *DashboardClient) Routes(r fiber.Router) {
	c.startupLoad()

	r.Get("/config", c.getConfig)
	r.Get("/tabs", c.getTabs)
	r.Get("/tabs/:id", c.renderTab)
	r.Get("/charts/:section/:name", c.getChart)
	r.Get("/data", c.getData)
	r.Get("/data/:key", c.getDataList)
	r.Get("/features", c.getFeatures)
	r.Post("/reload", c.reload)
}

// RequireFeature creates a Fiber middleware that only lets requests through when the
// feature flag is on
func (c *DashboardClient) RequireFeature(name string) fiber.Handler {
	c.startupLoad()

	return func(ctx *fiber.Ctx) error {
		on, err := c.FeatureEnabled(name)
		if err != nil {
			c.errorf("Unknown feature flag %s (code %s)", name, cn.ErrUnknownFeature.Error())
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(err, "Feature", name))
		}

		if !on {
			c.warnf("Feature %s is disabled (code %s)", name, cn.ErrFeatureDisabled.Error())
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrFeatureDisabled, "Feature", name))
		}

		return ctx.Next()
	}
}

func (c *DashboardClient) current(ctx *fiber.Ctx) (*dashboard.Customization, error) {
	cust, err := c.Customization()
	if err != nil {
		return nil, err
	}

	ctx.Set(cn.CustomizationVersionHeader, strconv.FormatUint(c.Version(), 10))

	return cust, nil
}

func (c *DashboardClient) getConfig(ctx *fiber.Ctx) error {
	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "AppConfig", "its sources")
	}

	return ctx.JSON(cust.Config)
}

func (c *DashboardClient) getTabs(ctx *fiber.Ctx) error {
	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "Tab", "its sources")
	}

	return ctx.JSON(cust.Config.Dashboard.Tabs)
}

func (c *DashboardClient) renderTab(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	format := ctx.Query("format", cn.FormatHTML)

	fragment, err := c.render(ctx, id, format)
	if err != nil {
		if errors.Is(err, cn.ErrUnsupportedFormat) {
			return c.respondError(ctx, err, "Tab", format)
		}

		return c.respondError(ctx, err, "Tab", id)
	}

	if strings.EqualFold(format, cn.FormatText) {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	} else {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	}

	return ctx.Send(fragment)
}

func (c *DashboardClient) render(ctx *fiber.Ctx, id, format string) ([]byte, error) {
	if c == nil || c.provider == nil {
		cust := dashboard.Default()

		comp, err := cust.Component(id)
		if err != nil {
			return nil, err
		}

		return component.Render(comp, &cust.Config, format)
	}

	c.startupLoad()

	fragment, version, err := c.provider.RenderTab(ctx.UserContext(), id, format)
	if err != nil {
		return nil, err
	}

	ctx.Set(cn.CustomizationVersionHeader, strconv.FormatUint(version, 10))

	return fragment, nil
}

func (c *DashboardClient) getChart(ctx *fiber.Ctx) error {
	section, name := ctx.Params("section"), ctx.Params("name")

	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "Chart", "its sources")
	}

	chart, err := cust.Chart(section, name)
	if err != nil {
		if errors.Is(err, cn.ErrUnknownSection) {
			return c.respondError(ctx, err, "Section", section)
		}

		return c.respondError(ctx, err, "Chart", name, section)
	}

	return ctx.JSON(chart)
}

func (c *DashboardClient) getData(ctx *fiber.Ctx) error {
	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "CustomData", "its sources")
	}

	return ctx.JSON(cust.Data)
}

func (c *DashboardClient) getDataList(ctx *fiber.Ctx) error {
	key := ctx.Params("key")

	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "CustomData", "its sources")
	}

	list, err := cust.DataList(key)
	if err != nil {
		return c.respondError(ctx, err, "CustomData", key)
	}

	return ctx.JSON(list)
}

func (c *DashboardClient) getFeatures(ctx *fiber.Ctx) error {
	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "Features", "its sources")
	}

	return ctx.JSON(cust.Config.Features.AsMap())
}

func (c *DashboardClient) reload(ctx *fiber.Ctx) error {
	if err := c.Reload(ctx.UserContext()); err != nil {
		return c.respondError(ctx, err, "AppConfig", "its sources")
	}

	cust, err := c.current(ctx)
	if err != nil {
		return c.respondError(ctx, err, "AppConfig", "its sources")
	}

	return ctx.JSON(fiber.Map{
		"version": c.Version(),
		"title":   cust.Config.Title,
		"tabs":    cust.TabIDs(),
	})
}

// respondError maps domain and source errors to the HTTP error payloads
func (c *DashboardClient) respondError(ctx *fiber.Ctx, err error, entityType string, args ...any) error {
	var fieldsErr pkg.ValidationKnownFieldsError
	if errors.As(err, &fieldsErr) {
		c.errorf("Customization rejected: %v", err)
		return pkgHTTP.WithError(ctx, fieldsErr)
	}

	if libErr.IsTransient(err) {
		c.warnf("Customization source unavailable: %v", err)
		return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrCustomizationLoadFailed, entityType, args...))
	}

	return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(err, entityType, args...))
}

func (c *DashboardClient) warnf(format string, args ...any) {
	if c != nil && c.provider != nil {
		c.provider.GetLogger().Warnf(format, args...)
	}
}

func (c *DashboardClient) errorf(format string, args ...any) {
	if c != nil && c.provider != nil {
		c.provider.GetLogger().Errorf(format, args...)
	}
}
