package services

import (
	"testing"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewCategory(t *testing.T) {
	setupDatabase(t)

	category, err := NewCategory("python", "The Python programming language", slugOf("python"))
	require.NoError(t, err)

	found, err := GetCategory("python")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
	assert.Equal(t, "The Python programming language", found.Description)
	assert.Equal(t, "/category/python/", found.Permalink())
}

func TestCategorySlugUniqueness(t *testing.T) {
	setupDatabase(t)

	_, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)

	_, err = NewCategory("python again", "", slugOf("python"))
	assert.ErrorIs(t, err, ErrSlugTaken)

	_, err = NewCategory("Python", "", slugOf("Python"))
	assert.NoError(t, err, "slugs compare case-sensitively")
}

func TestCategoryWithoutSlug(t *testing.T) {
	setupDatabase(t)

	first, err := NewCategory("misc", "", nil)
	require.NoError(t, err)
	_, err = NewCategory("other", "", slugOf(""))
	require.NoError(t, err, "an empty slug is stored as no slug")

	assert.Nil(t, first.Slug)
	assert.Empty(t, first.Permalink())
}

func TestCategoryRejectsMalformedSlug(t *testing.T) {
	setupDatabase(t)

	_, err := NewCategory("python", "", slugOf("has space"))
	assert.Error(t, err)
}

func TestEditCategoryKeepsOwnSlug(t *testing.T) {
	setupDatabase(t)

	category, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)
	_, err = NewCategory("perl", "", slugOf("perl"))
	require.NoError(t, err)

	category, err = EditCategory(category, "Python 3", "The Python programming language", slugOf("python"))
	require.NoError(t, err)
	assert.Equal(t, "Python 3", category.Name)

	_, err = EditCategory(category, "Python 3", "", slugOf("perl"))
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	site := setupDatabase(t)

	category, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)
	post := newTestPost(t, site, "My first post", "my-first-post", day(1))
	post.CategoryID = &category.ID
	_, err = EditPost(post)
	require.NoError(t, err)

	require.NoError(t, DeleteCategory(category))

	var reloaded models.Post
	require.NoError(t, database.C.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.CategoryID)

	_, err = GetCategory("python")
	assert.Error(t, err)
}

func TestTagSlugUniqueness(t *testing.T) {
	setupDatabase(t)

	tag, err := NewTag("python", slugOf("python"))
	require.NoError(t, err)
	assert.Equal(t, "/tag/python/", tag.Permalink())

	_, err = NewTag("python", slugOf("python"))
	assert.ErrorIs(t, err, ErrSlugTaken)

	renamed, err := EditTag(tag, "java", slugOf("java"))
	require.NoError(t, err)

	found, err := GetTag("java")
	require.NoError(t, err)
	assert.Equal(t, renamed.ID, found.ID)
}

func TestDeleteTagRemovesMemberships(t *testing.T) {
	site := setupDatabase(t)

	tag, err := NewTag("python", slugOf("python"))
	require.NoError(t, err)
	post := newTestPost(t, site, "My first post", "my-first-post", day(1))
	require.NoError(t, AddPostTag(post, tag))

	require.NoError(t, DeleteTag(tag))

	var memberships int64
	require.NoError(t, database.C.Model(&models.PostTag{}).Count(&memberships).Error)
	assert.Zero(t, memberships)

	_, err = GetPostBySlug(database.C, "my-first-post")
	assert.NoError(t, err, "deleting a tag keeps its posts")
}

func TestListCategoryAndTag(t *testing.T) {
	setupDatabase(t)

	_, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)
	_, err = NewCategory("go", "", slugOf("go"))
	require.NoError(t, err)
	_, err = NewTag("web", nil)
	require.NoError(t, err)

	categories, err := ListCategory(10, 0)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "go", categories[0].Name)

	tags, err := ListTag(10, 0)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestSlugRaceReportsSlugTaken(t *testing.T) {
	setupDatabase(t)

	_, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)

	// A writer that skipped the upfront check only hits the unique index
	err = database.C.Create(&models.Category{Name: "Python", Slug: slugOf("python")}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translateSlugError(err), ErrSlugTaken)

	assert.NoError(t, translateSlugError(nil))
}

func TestCountCategoryAndTag(t *testing.T) {
	setupDatabase(t)

	_, err := NewCategory("python", "", slugOf("python"))
	require.NoError(t, err)
	_, err = NewTag("web", nil)
	require.NoError(t, err)
	_, err = NewTag("go", nil)
	require.NoError(t, err)

	count, err := CountCategory()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = CountTag()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
