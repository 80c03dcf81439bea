package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("Blog API")
	{
		api.Get("/search", searchPost)

		categories := api.Group("/category").Name("Categories API")
		{
			categories.Get("/", listCategories)
			categories.Get("/:slug/:page?", listPostByCategory)
		}

		tags := api.Group("/tag").Name("Tags API")
		{
			tags.Get("/", listTags)
			tags.Get("/:slug/:page?", listPostByTag)
		}

		api.Get("/:year<int>/:month<int>/:slug", getPost)
		api.Get("/:year<int>/:month<int>", listPostByMonth)

		api.Get("/:page?", listPost)
	}
}
