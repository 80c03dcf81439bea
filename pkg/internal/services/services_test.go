package services

import (
	"testing"
	"time"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupDatabase(t *testing.T) models.Site {
	t.Helper()

	conn, err := database.NewMemoryGorm()
	require.NoError(t, err)
	database.C = conn
	t.Cleanup(func() {
		if raw, err := conn.DB(); err == nil {
			_ = raw.Close()
		}
	})

	site, err := EnsureSite("Test Blog", "example.com")
	require.NoError(t, err)
	return site
}

func newTestPost(t *testing.T, site models.Site, title, slug string, pubDate time.Time) models.Post {
	t.Helper()

	post, err := NewPost(models.Post{
		Title:   title,
		Slug:    slug,
		Text:    "This is " + title,
		PubDate: pubDate,
		SiteID:  site.ID,
	})
	require.NoError(t, err)
	return post
}

func day(n int) time.Time {
	return time.Date(2014, time.August, n, 12, 0, 0, 0, time.UTC)
}

var slugOf = lo.ToPtr[string]
