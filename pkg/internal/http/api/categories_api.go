package api

import (
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"git.solsynth.dev/hypernet/blog/pkg/internal/services"
	"git.solsynth.dev/hypernet/blog/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)
	if take > 100 {
		take = 100
	}

	count, err := services.CountCategory()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when counting categories...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list categories")
	}
	categories, err := services.ListCategory(take, offset)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when listing categories...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list categories")
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data": lo.Map(categories, func(item models.Category, _ int) queries.CategoryEntry {
			return queries.NewCategoryEntry(item)
		}),
	})
}

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)
	if take > 100 {
		take = 100
	}

	count, err := services.CountTag()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when counting tags...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list tags")
	}
	tags, err := services.ListTag(take, offset)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when listing tags...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list tags")
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data": lo.Map(tags, func(item models.Tag, _ int) queries.TagEntry {
			return queries.NewTagEntry(item)
		}),
	})
}
