package api

import (
	"errors"
	"time"

	"git.solsynth.dev/hypernet/blog/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/blog/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func renderListing(c *fiber.Ctx, in queries.Listing) error {
	site, err := exts.GetSite(c)
	if err != nil {
		return err
	}

	out, err := queries.ListPostPage(site, in, exts.GetPage(c))
	if err != nil {
		log.Error().Err(err).Int("mode", int(in.Mode)).Msg("An error occurred when listing posts...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list posts")
	}

	return c.JSON(out)
}

func listPost(c *fiber.Ctx) error {
	return renderListing(c, queries.ListAll())
}

func listPostByCategory(c *fiber.Ctx) error {
	return renderListing(c, queries.ListByCategory(c.Params("slug")))
}

func listPostByTag(c *fiber.Ctx) error {
	return renderListing(c, queries.ListByTag(c.Params("slug")))
}

func listPostByMonth(c *fiber.Ctx) error {
	year, _ := c.ParamsInt("year")
	month, _ := c.ParamsInt("month")

	return renderListing(c, queries.ListByMonth(year, time.Month(month)))
}

func searchPost(c *fiber.Ctx) error {
	return renderListing(c, queries.ListSearch(c.Query("q")))
}

func getPost(c *fiber.Ctx) error {
	site, err := exts.GetSite(c)
	if err != nil {
		return err
	}

	item, err := queries.GetPost(site, c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	} else if err != nil {
		log.Error().Err(err).Str("slug", c.Params("slug")).Msg("An error occurred when getting post...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to get post")
	}

	return c.JSON(item)
}
