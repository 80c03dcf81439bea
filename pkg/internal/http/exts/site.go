package exts

import (
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

const siteLocalsKey = "site"

// SiteMiddleware pins the site every handler in the chain displays.
func SiteMiddleware(site models.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(siteLocalsKey, site)
		return c.Next()
	}
}

func GetSite(c *fiber.Ctx) (models.Site, error) {
	site, ok := c.Locals(siteLocalsKey).(models.Site)
	if !ok {
		return site, fiber.NewError(fiber.StatusInternalServerError, "no site configured for this request")
	}
	return site, nil
}
