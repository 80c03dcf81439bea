package exts

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPage(t *testing.T) {
	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(GetPage(c)))
	}
	app.Get("/list/:page?", handler)

	cases := []struct {
		target string
		want   int
	}{
		{"/list", 1},
		{"/list/3", 3},
		{"/list/abc", 1},
		{"/list/2x", 1},
		{"/list/-1", -1},
		{"/list?page=4", 4},
		{"/list?page=abc", 1},
		{"/list/2?page=4", 2},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(tc.want), string(body))
		})
	}
}
