package services

import (
	"errors"

	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"git.solsynth.dev/hypernet/blog/pkg/internal/models"
	"gorm.io/gorm"
)

func CountCategory() (int64, error) {
	var count int64
	err := database.C.Model(&models.Category{}).Count(&count).Error

	return count, err
}

func ListCategory(take int, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Order("name ASC").Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func GetCategory(slug string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("slug = ?", slug).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(name, description string, slug *string) (models.Category, error) {
	category := models.Category{
		Name:        name,
		Description: description,
		Slug:        normalizeSlug(slug),
	}

	if err := ValidateStruct(category); err != nil {
		return category, err
	}
	if err := ensureSlugAvailable(&models.Category{}, category.Slug, 0); err != nil {
		return category, err
	}

	err := translateSlugError(database.C.Create(&category).Error)

	return category, err
}

func EditCategory(category models.Category, name, description string, slug *string) (models.Category, error) {
	category.Name = name
	category.Description = description
	category.Slug = normalizeSlug(slug)

	if err := ValidateStruct(category); err != nil {
		return category, err
	}
	if err := ensureSlugAvailable(&models.Category{}, category.Slug, category.ID); err != nil {
		return category, err
	}

	err := translateSlugError(database.C.Save(&category).Error)

	return category, err
}

// DeleteCategory detaches every post from the category before removing it,
// the posts themselves stay.
func DeleteCategory(category models.Category) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func CountTag() (int64, error) {
	var count int64
	err := database.C.Model(&models.Tag{}).Count(&count).Error

	return count, err
}

func ListTag(take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Order("name ASC").Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func GetTag(slug string) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where("slug = ?", slug).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func NewTag(name string, slug *string) (models.Tag, error) {
	tag := models.Tag{
		Name: name,
		Slug: normalizeSlug(slug),
	}

	if err := ValidateStruct(tag); err != nil {
		return tag, err
	}
	if err := ensureSlugAvailable(&models.Tag{}, tag.Slug, 0); err != nil {
		return tag, err
	}

	err := translateSlugError(database.C.Create(&tag).Error)

	return tag, err
}

func EditTag(tag models.Tag, name string, slug *string) (models.Tag, error) {
	tag.Name = name
	tag.Slug = normalizeSlug(slug)

	if err := ValidateStruct(tag); err != nil {
		return tag, err
	}
	if err := ensureSlugAvailable(&models.Tag{}, tag.Slug, tag.ID); err != nil {
		return tag, err
	}

	err := translateSlugError(database.C.Save(&tag).Error)

	return tag, err
}

// DeleteTag drops the tag's memberships and then the tag.
func DeleteTag(tag models.Tag) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

func normalizeSlug(slug *string) *string {
	if slug != nil && len(*slug) == 0 {
		return nil
	}
	return slug
}

// ensureSlugAvailable rejects a slug already held by another row of the same model.
// Comparison is case-sensitive.
func ensureSlugAvailable(model any, slug *string, self uint) error {
	if slug == nil {
		return nil
	}

	tx := database.C.Model(model).Where("slug = ?", *slug)
	if self > 0 {
		tx = tx.Where("id <> ?", self)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}

// translateSlugError reports a write that lost a slug race to the unique index
// the same way the upfront check does.
func translateSlugError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}
