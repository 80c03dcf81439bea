package exts

import (
	"github.com/gofiber/fiber/v2"
)

// GetPage prefers the page path parameter and falls back to the page query.
// Anything absent or non-numeric is page 1, the range is left to the pager.
func GetPage(c *fiber.Ctx) int {
	if len(c.Params("page")) > 0 {
		page, _ := c.ParamsInt("page", 1)
		return page
	}
	return c.QueryInt("page", 1)
}
